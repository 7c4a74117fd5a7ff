package datastore

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/color-collector/api/models"
)

type SpotlightRepository interface {
	Create(spotlight models.Spotlight) (models.Spotlight, error)
	GetByDate(date time.Time) (models.Spotlight, error)
	GetToday() (models.Spotlight, error)
}

type SpotlightDatabase struct {
	database *sql.DB
}

func NewSpotlightDatabase(db *sql.DB) (SpotlightDatabase, error) {
	var spotlightDB SpotlightDatabase
	spotlightDB.database = db
	return spotlightDB, nil
}

// StartOfDay truncates t to midnight in its own location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Create inserts a new daily spotlight into the database
func (sdb SpotlightDatabase) Create(spotlight models.Spotlight) (models.Spotlight, error) {
	sqlStatement := `
		INSERT INTO daily_spotlight (date, color_id, hex, color_name, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := sdb.database.QueryRow(
		sqlStatement,
		spotlight.Date,
		spotlight.ColorID,
		spotlight.Hex,
		spotlight.ColorName,
		spotlight.CreatedAt,
	).Scan(&spotlight.ID)

	if err != nil {
		return models.Spotlight{}, fmt.Errorf("failed to create daily spotlight: %v", err)
	}

	return spotlight, nil
}

// GetByDate retrieves the spotlight for a day
func (sdb SpotlightDatabase) GetByDate(date time.Time) (models.Spotlight, error) {
	sqlStatement := `
		SELECT id, date, color_id, hex, color_name, created_at
		FROM daily_spotlight
		WHERE date = $1`

	row := sdb.database.QueryRow(sqlStatement, StartOfDay(date))

	var spotlight models.Spotlight
	err := row.Scan(
		&spotlight.ID,
		&spotlight.Date,
		&spotlight.ColorID,
		&spotlight.Hex,
		&spotlight.ColorName,
		&spotlight.CreatedAt,
	)

	switch err {
	case sql.ErrNoRows:
		return models.Spotlight{}, NoRowsError{true, err}
	case nil:
		return spotlight, nil
	default:
		return models.Spotlight{}, err
	}
}

// GetToday retrieves today's spotlight
func (sdb SpotlightDatabase) GetToday() (models.Spotlight, error) {
	return sdb.GetByDate(time.Now())
}
