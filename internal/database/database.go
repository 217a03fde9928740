package database

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

var DB *sql.DB

// Sentinel errors for storage outcomes callers branch on.
var (
	ErrDuplicateJob = errors.New("job already saved")
	ErrNotFound     = errors.New("not found")
)

// Initialize opens the SQLite database at path and runs migrations.
func Initialize(path string) error {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}
	if err := RunMigrations(db); err != nil {
		db.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	DB = db
	return nil
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// RunMigrations creates all necessary tables
func RunMigrations(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS jobs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		company TEXT NOT NULL,
		location TEXT,
		type TEXT DEFAULT 'FULL_TIME',
		salary TEXT,
		description TEXT,
		url TEXT UNIQUE,
		source TEXT,
		posted_at DATETIME,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS tracked_jobs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		job_id INTEGER NOT NULL UNIQUE,
		status TEXT NOT NULL DEFAULT 'SAVED',
		notes TEXT DEFAULT '',
		applied_at DATETIME,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (job_id) REFERENCES jobs(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS settings (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		desired_roles TEXT DEFAULT '',
		preferred_locations TEXT DEFAULT '',
		remote_preference TEXT DEFAULT '',
		salary_expectation TEXT DEFAULT '',
		skills TEXT DEFAULT '',
		experience TEXT DEFAULT '',
		education TEXT DEFAULT '',
		industries TEXT DEFAULT '',
		company_size TEXT DEFAULT '',
		deal_breakers TEXT DEFAULT '',
		additional_notes TEXT DEFAULT '',
		scrape_urls TEXT DEFAULT '',
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS search_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		query TEXT,
		jobs_found INTEGER DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_jobs_company ON jobs(company);
	CREATE INDEX IF NOT EXISTS idx_jobs_source ON jobs(source);
	CREATE INDEX IF NOT EXISTS idx_tracked_jobs_status ON tracked_jobs(status);
	`

	_, err := db.Exec(schema)
	return err
}
