package database

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DB is the global database connection
var DB *sqlx.DB

// Connect establishes a connection to the database. A databaseURL that
// looks like a Postgres DSN selects the pq driver; anything else is
// treated as a SQLite path. An empty databaseURL uses data/cardbot.db.
func Connect(databaseURL string) error {
	driver := "sqlite3"
	dsn := databaseURL

	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		driver = "postgres"
	} else if databaseURL == "" {
		dataDir := "data"
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %v", err)
		}
		dsn = filepath.Join(dataDir, "cardbot.db")
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %v", err)
	}

	if driver == "sqlite3" {
		// Enable foreign keys
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			return fmt.Errorf("failed to enable foreign keys: %v", err)
		}

		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	DB = db

	return initializeSchema()
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// initializeSchema creates necessary tables if they don't exist
func initializeSchema() error {
	var statements []string

	if DB.DriverName() == "postgres" {
		statements = []string{
			`CREATE TABLE IF NOT EXISTS users (
				id BIGSERIAL PRIMARY KEY,
				telegram_id BIGINT UNIQUE NOT NULL,
				username TEXT,
				first_name TEXT,
				last_name TEXT,
				created_at TIMESTAMP DEFAULT NOW()
			)`,
			`CREATE TABLE IF NOT EXISTS words (
				id BIGSERIAL PRIMARY KEY,
				english TEXT NOT NULL,
				russian TEXT NOT NULL,
				is_default BOOLEAN DEFAULT FALSE
			)`,
			`CREATE TABLE IF NOT EXISTS user_words (
				id BIGSERIAL PRIMARY KEY,
				user_id BIGINT NOT NULL REFERENCES users(id),
				word_id BIGINT NOT NULL REFERENCES words(id),
				deleted BOOLEAN DEFAULT FALSE,
				added_at TIMESTAMP DEFAULT NOW(),
				UNIQUE(user_id, word_id)
			)`,
		}
	} else {
		statements = []string{
			`CREATE TABLE IF NOT EXISTS users (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				telegram_id INTEGER UNIQUE NOT NULL,
				username TEXT,
				first_name TEXT,
				last_name TEXT,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS words (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				english TEXT NOT NULL,
				russian TEXT NOT NULL,
				is_default BOOLEAN DEFAULT FALSE
			)`,
			`CREATE TABLE IF NOT EXISTS user_words (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id INTEGER NOT NULL,
				word_id INTEGER NOT NULL,
				deleted BOOLEAN DEFAULT FALSE,
				added_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (user_id) REFERENCES users(id),
				FOREIGN KEY (word_id) REFERENCES words(id),
				UNIQUE(user_id, word_id)
			)`,
		}
	}

	for _, stmt := range statements {
		if _, err := DB.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %v", err)
		}
	}

	return nil
}
