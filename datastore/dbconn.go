package datastore

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// NoRowsError is returned by repositories when a lookup finds nothing
type NoRowsError struct {
	NoRows bool
	Err    error
}

func (nr NoRowsError) Error() string {
	return fmt.Sprintf("%v: no rows returned for scan: %v", nr.NoRows, nr.Err)
}

// IsNoRows reports whether err is a NoRowsError
func IsNoRows(err error) bool {
	_, ok := err.(NoRowsError)
	return ok
}

// NewDB takes arguments for db type and conn string and returns an open, pinged connection
func NewDB(dbtype string, connstr string) (*sql.DB, error) {
	db, openError := sql.Open(dbtype, connstr)
	if openError != nil {
		return nil, fmt.Errorf("error opening connection -> %v", openError)
	}

	if pingError := db.Ping(); pingError != nil {
		db.Close()
		return nil, fmt.Errorf("could not establish connection with database -> %v", pingError)
	}

	return db, nil
}

// BuildDBConnStr builds a PostgreSQL connection string
func BuildDBConnStr(host, user, password, dbname, sslmode string) string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s", user, password, host, dbname, sslmode)
}
