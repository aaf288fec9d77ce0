package storage

import "database/sql"

func Migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
			number INTEGER PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			balance TEXT NOT NULL DEFAULT '0',
			goal TEXT NOT NULL DEFAULT '0'
		);`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			account_number INTEGER NOT NULL,
			ref TEXT NOT NULL,
			kind TEXT NOT NULL,
			amount TEXT NOT NULL,
			ts INTEGER NOT NULL,
			note TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS audit_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			account_number INTEGER,
			action TEXT,
			metadata TEXT,
			created_at INTEGER
		);`,
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
