package cmd

import (
	"database/sql"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/color-collector/api/api"
	"github.com/color-collector/api/datastore"
	"github.com/color-collector/api/migrations"
)

type stores struct {
	users      datastore.UserRepository
	colors     datastore.ColorRepository
	spotlights datastore.SpotlightRepository
	db         *sql.DB
}

func (s stores) Close() {
	if s.db != nil {
		s.db.Close()
	}
}

func openDB(cfg api.Config) (*sql.DB, error) {
	connStr := datastore.BuildDBConnStr(
		cfg.DatabaseHost,
		cfg.DatabaseUser,
		cfg.DatabasePassword,
		cfg.DatabaseName,
		cfg.SSLMode,
	)
	db, err := datastore.NewDB(cfg.DatabaseType, connStr)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}
	return db, nil
}

// openStores returns memory repositories for DB_TYPE=memory, otherwise
// connects, migrates and returns the postgres repositories
func openStores(cfg api.Config) (stores, error) {
	if cfg.DatabaseType == "memory" {
		log.Warn("using in-memory storage, data is lost on restart")
		return stores{
			users:      datastore.NewMemoryUserStore(),
			colors:     datastore.NewMemoryColorStore(),
			spotlights: datastore.NewMemorySpotlightStore(),
		}, nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return stores{}, err
	}

	log.Info("running database migrations")
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return stores{}, errors.Wrap(err, "failed to run migrations")
	}

	users, _ := datastore.NewUserDatabase(db)
	colors, _ := datastore.NewColorDatabase(db)
	spotlights, _ := datastore.NewSpotlightDatabase(db)
	return stores{users: users, colors: colors, spotlights: spotlights, db: db}, nil
}
