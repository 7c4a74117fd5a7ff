package datastore

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/color-collector/api/models"
)

type UserRepository interface {
	Create(user models.User) (models.User, error)
	Get(userID string) (models.User, error)
	GetUserByEmail(email string) (models.User, error)
	GetUserByUsername(username string) (models.User, error)
	ValidateAndGetUser(userLogin models.Credentials) (models.User, error)
}

func NewUserDatabase(db *sql.DB) (UserDatabase, error) {
	var UserDatabase UserDatabase
	UserDatabase.database = db
	return UserDatabase, nil
}

type UserDatabase struct {
	database *sql.DB
}

const userColumns = `
		user_id,
		username,
		email,
		password_hash,
		kind,
		created_at,
		updated_at`

func scanUser(row interface{ Scan(...any) error }) (models.User, error) {
	var user models.User
	scanErr := row.Scan(
		&user.UserID,
		&user.Username,
		&user.Email,
		&user.HashedPassword,
		&user.Kind,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	switch scanErr {
	case sql.ErrNoRows:
		return models.User{}, NoRowsError{true, scanErr}
	case nil:
		return user, nil
	default:
		return models.User{}, scanErr
	}
}

func (pgdb UserDatabase) Create(user models.User) (models.User, error) {
	db := pgdb.database

	_, insertErr := db.Exec(`
		INSERT INTO users (`+userColumns+`
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.UserID,
		user.Username,
		user.Email,
		user.HashedPassword,
		user.Kind,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if insertErr != nil {
		return user, fmt.Errorf("failed to create user: %v", insertErr)
	}

	return user, nil
}

func (pgdb UserDatabase) Get(userID string) (models.User, error) {
	row := pgdb.database.QueryRow(`SELECT `+userColumns+` FROM users WHERE user_id=$1;`, userID)
	return scanUser(row)
}

func (pgdb UserDatabase) GetUserByEmail(email string) (models.User, error) {
	row := pgdb.database.QueryRow(`SELECT `+userColumns+` FROM users WHERE email=$1;`, email)
	return scanUser(row)
}

func (pgdb UserDatabase) GetUserByUsername(username string) (models.User, error) {
	row := pgdb.database.QueryRow(`SELECT `+userColumns+` FROM users WHERE username=$1;`, username)
	return scanUser(row)
}

func (pgdb UserDatabase) ValidateAndGetUser(credentials models.Credentials) (models.User, error) {
	user, err := pgdb.GetUserByEmail(credentials.Email)
	if err != nil {
		return models.User{}, err
	}

	if !user.CheckPassword(credentials.Password) {
		return models.User{}, fmt.Errorf("invalid credentials for %s", credentials.Email)
	}

	return user, nil
}
