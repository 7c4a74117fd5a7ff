package cmd

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/color-collector/api/api"
	"github.com/color-collector/api/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "apply pending database migrations",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg := api.ConfigFromEnv()
		if cfg.DatabaseType == "memory" {
			return errors.New("nothing to migrate with DB_TYPE=memory")
		}

		db, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := migrations.RunMigrations(db); err != nil {
			return err
		}
		log.Info("database is up to date")
		return nil
	},
}
