package datastore

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/color-collector/api/models"
)

// ListOrder controls the order of collection listings
type ListOrder int

const (
	OrderNewest ListOrder = iota
	OrderTimeline
)

type ColorRepository interface {
	Create(record models.ColorRecord) (models.ColorRecord, error)
	Get(userID, id string) (models.ColorRecord, error)
	ListByUser(userID string, order ListOrder) ([]models.ColorRecord, error)
	ListLocated(userID string) ([]models.ColorRecord, error)
	UpdateProximity(userID, id string, proximity models.Proximity) (models.ColorRecord, error)
	UpdateLocation(userID, id string, location models.Location) (models.ColorRecord, error)
	Delete(userID, id string) error
	RandomRecord() (models.ColorRecord, error)
}

type ColorDatabase struct {
	database *sql.DB
}

func NewColorDatabase(db *sql.DB) (ColorDatabase, error) {
	var colorDB ColorDatabase
	colorDB.database = db
	return colorDB, nil
}

const colorColumns = `
		id, user_id, hex, original_code, format, name, approximated,
		proximity, latitude, longitude, accuracy, place_name, date_added`

func scanColor(row interface{ Scan(...any) error }) (models.ColorRecord, error) {
	var (
		record    models.ColorRecord
		proximity sql.NullString
		lat, lng  sql.NullFloat64
		accuracy  sql.NullFloat64
		placeName sql.NullString
	)

	err := row.Scan(
		&record.ID,
		&record.UserID,
		&record.Hex,
		&record.OriginalCode,
		&record.Format,
		&record.Name,
		&record.Approximated,
		&proximity,
		&lat,
		&lng,
		&accuracy,
		&placeName,
		&record.DateAdded,
	)
	if err != nil {
		return models.ColorRecord{}, err
	}

	if proximity.Valid {
		p := models.Proximity(proximity.String)
		record.Proximity = &p
	}
	if lat.Valid && lng.Valid {
		record.Location = &models.Location{
			Latitude:  lat.Float64,
			Longitude: lng.Float64,
			Accuracy:  accuracy.Float64,
			PlaceName: placeName.String,
		}
	}

	return record, nil
}

func locationArgs(loc *models.Location) (lat, lng, accuracy sql.NullFloat64, placeName sql.NullString) {
	if loc == nil {
		return
	}
	lat = sql.NullFloat64{Float64: loc.Latitude, Valid: true}
	lng = sql.NullFloat64{Float64: loc.Longitude, Valid: true}
	accuracy = sql.NullFloat64{Float64: loc.Accuracy, Valid: true}
	placeName = sql.NullString{String: loc.PlaceName, Valid: loc.PlaceName != ""}
	return
}

// Create inserts a new collected color
func (cdb ColorDatabase) Create(record models.ColorRecord) (models.ColorRecord, error) {
	var proximity sql.NullString
	if record.Proximity != nil {
		proximity = sql.NullString{String: string(*record.Proximity), Valid: true}
	}
	lat, lng, accuracy, placeName := locationArgs(record.Location)

	_, err := cdb.database.Exec(`
		INSERT INTO colors (`+colorColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		record.ID,
		record.UserID,
		record.Hex,
		record.OriginalCode,
		record.Format,
		record.Name,
		record.Approximated,
		proximity,
		lat,
		lng,
		accuracy,
		placeName,
		record.DateAdded,
	)
	if err != nil {
		return models.ColorRecord{}, fmt.Errorf("failed to create color: %v", err)
	}

	return record, nil
}

// Get retrieves one of the user's colors
func (cdb ColorDatabase) Get(userID, id string) (models.ColorRecord, error) {
	row := cdb.database.QueryRow(`SELECT `+colorColumns+` FROM colors WHERE user_id = $1 AND id = $2`, userID, id)

	record, err := scanColor(row)
	switch err {
	case sql.ErrNoRows:
		return models.ColorRecord{}, NoRowsError{true, err}
	case nil:
		return record, nil
	default:
		return models.ColorRecord{}, err
	}
}

func (cdb ColorDatabase) list(query string, args ...any) ([]models.ColorRecord, error) {
	rows, err := cdb.database.Query(query, args...)
	if err != nil {
		return []models.ColorRecord{}, err
	}
	defer rows.Close()

	records := []models.ColorRecord{}
	for rows.Next() {
		record, err := scanColor(rows)
		if err != nil {
			return []models.ColorRecord{}, err
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return []models.ColorRecord{}, err
	}

	return records, nil
}

// ListByUser retrieves the user's whole collection
func (cdb ColorDatabase) ListByUser(userID string, order ListOrder) ([]models.ColorRecord, error) {
	direction := "DESC"
	if order == OrderTimeline {
		direction = "ASC"
	}
	return cdb.list(`SELECT `+colorColumns+` FROM colors WHERE user_id = $1 ORDER BY date_added `+direction, userID)
}

// ListLocated retrieves the user's colors that carry a location
func (cdb ColorDatabase) ListLocated(userID string) ([]models.ColorRecord, error) {
	return cdb.list(`
		SELECT `+colorColumns+`
		FROM colors
		WHERE user_id = $1 AND latitude IS NOT NULL AND longitude IS NOT NULL
		ORDER BY date_added ASC`, userID)
}

func (cdb ColorDatabase) updated(res sql.Result, err error, userID, id string) (models.ColorRecord, error) {
	if err != nil {
		return models.ColorRecord{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models.ColorRecord{}, err
	}
	if n == 0 {
		return models.ColorRecord{}, NoRowsError{true, sql.ErrNoRows}
	}
	return cdb.Get(userID, id)
}

// UpdateProximity attaches a proximity rating to a color
func (cdb ColorDatabase) UpdateProximity(userID, id string, proximity models.Proximity) (models.ColorRecord, error) {
	res, err := cdb.database.Exec(`UPDATE colors SET proximity = $1 WHERE user_id = $2 AND id = $3`,
		string(proximity), userID, id)
	return cdb.updated(res, err, userID, id)
}

// UpdateLocation attaches a location to a color
func (cdb ColorDatabase) UpdateLocation(userID, id string, location models.Location) (models.ColorRecord, error) {
	lat, lng, accuracy, placeName := locationArgs(&location)
	res, err := cdb.database.Exec(`
		UPDATE colors
		SET latitude = $1, longitude = $2, accuracy = $3, place_name = $4
		WHERE user_id = $5 AND id = $6`,
		lat, lng, accuracy, placeName, userID, id)
	return cdb.updated(res, err, userID, id)
}

// Delete removes a color from the user's collection
func (cdb ColorDatabase) Delete(userID, id string) error {
	res, err := cdb.database.Exec(`DELETE FROM colors WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return NoRowsError{true, sql.ErrNoRows}
	}
	return nil
}

// RandomRecord picks any collected color across all users
func (cdb ColorDatabase) RandomRecord() (models.ColorRecord, error) {
	row := cdb.database.QueryRow(`SELECT ` + colorColumns + ` FROM colors ORDER BY RANDOM() LIMIT 1`)

	record, err := scanColor(row)
	switch err {
	case sql.ErrNoRows:
		return models.ColorRecord{}, NoRowsError{true, err}
	case nil:
		return record, nil
	default:
		return models.ColorRecord{}, err
	}
}
