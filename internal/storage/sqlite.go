package storage

import (
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

const sessionSchema = `
CREATE TABLE IF NOT EXISTS sessions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_data TEXT NOT NULL,
	created_on TIMESTAMP NOT NULL,
	expires_on TIMESTAMP NOT NULL
);`

// OpenSessionDB opens (or creates) the SQLite database backing login
// sessions. Articles live in the JSON document; only session state needs a
// queryable store with expiry.
func OpenSessionDB(file string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", file)
	if err != nil {
		return nil, errors.Wrapf(err, "opening session database %s", file)
	}
	if _, err := db.Exec(sessionSchema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "creating sessions table")
	}
	return db, nil
}
