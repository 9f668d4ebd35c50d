package database

import (
	"context"
	"fmt"
	"log"
)

// Attendance ids are "{employee_id}_{YYYY-MM-DD}", so the id column must
// hold the employee id plus an 11-character suffix.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		employee_id VARCHAR(50) PRIMARY KEY,
		full_name   VARCHAR(100) NOT NULL,
		email       VARCHAR(100) NOT NULL UNIQUE,
		department  VARCHAR(100) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS attendance (
		id          VARCHAR(80) PRIMARY KEY,
		employee_id VARCHAR(50) NOT NULL REFERENCES employees(employee_id) ON DELETE CASCADE,
		date        DATE NOT NULL,
		status      VARCHAR(20) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_employee_id ON attendance(employee_id)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance(date)`,
}

var dropStatements = []string{
	`DROP TABLE IF EXISTS attendance`,
	`DROP TABLE IF EXISTS employees`,
}

// InitSchema creates the tables and indexes if they do not exist yet.
func (db *PostgresDB) InitSchema(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	for _, stmt := range schemaStatements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema bootstrap failed: %w", err)
		}
	}

	log.Println("[DATABASE] Schema initialized")
	return nil
}

// DropSchema removes all tables. Used by the management CLI only.
func (db *PostgresDB) DropSchema(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	for _, stmt := range dropStatements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema drop failed: %w", err)
		}
	}

	log.Println("[DATABASE] Schema dropped")
	return nil
}

// TableExists reports whether a table is present in the current schema.
func (db *PostgresDB) TableExists(ctx context.Context, name string) (bool, error) {
	if db.Pool == nil {
		return false, fmt.Errorf("database pool is not initialized")
	}

	var exists bool
	err := db.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)`,
		name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check table %s: %w", name, err)
	}

	return exists, nil
}
