package database

import (
	"database/sql"
	"log"
)

// EnsureSchema creates the portal tables if they do not exist yet.
func EnsureSchema(db *sql.DB) error {
	log.Println("Ensuring database schema...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS students (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			roll_no TEXT NOT NULL DEFAULT '',
			semester TEXT NOT NULL DEFAULT '',
			course TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS attendance (
			id BIGSERIAL PRIMARY KEY,
			student_id BIGINT NOT NULL REFERENCES students(id),
			subject TEXT NOT NULL DEFAULT '',
			total_lectures INTEGER NOT NULL DEFAULT 0,
			attended_lectures INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id BIGSERIAL PRIMARY KEY,
			student_id BIGINT NOT NULL REFERENCES students(id),
			task_name TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending'
		)`,
		`CREATE TABLE IF NOT EXISTS library (
			id BIGSERIAL PRIMARY KEY,
			student_id BIGINT NOT NULL REFERENCES students(id),
			book_name TEXT NOT NULL DEFAULT '',
			author TEXT NOT NULL DEFAULT '',
			subject TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'available'
		)`,
		`CREATE TABLE IF NOT EXISTS collaboration (
			id BIGSERIAL PRIMARY KEY,
			student_id BIGINT NOT NULL REFERENCES students(id),
			content TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Failed to ensure schema: %v", err)
			return err
		}
	}

	log.Println("Database schema is up to date")
	return nil
}
