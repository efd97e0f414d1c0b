package repository

import (
	"context"

	"github.com/insideimaging/insideimaging-backend/pkg/database"
)

// Schema holds the DDL for the analytics and account tables. Statements
// are idempotent so the service can run them at startup.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS report_events (
		id UUID PRIMARY KEY,
		job_id TEXT NOT NULL,
		patient_name TEXT NOT NULL DEFAULT '',
		patient_age INTEGER,
		patient_sex TEXT NOT NULL DEFAULT '',
		modality TEXT NOT NULL DEFAULT '',
		body_region TEXT NOT NULL DEFAULT '',
		study TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		disease_tags TEXT NOT NULL DEFAULT '',
		organ_tags TEXT NOT NULL DEFAULT '',
		condition_tags TEXT NOT NULL DEFAULT '',
		language TEXT NOT NULL DEFAULT '',
		word_count INTEGER NOT NULL DEFAULT 0,
		duration_ms BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT report_events_job_id_key UNIQUE (job_id),
		CONSTRAINT patient_age_valid CHECK (patient_age IS NULL OR (patient_age >= 0 AND patient_age <= 130)),
		CONSTRAINT patient_sex_valid CHECK (patient_sex IN ('', 'male', 'female')),
		CONSTRAINT status_valid CHECK (status IN ('processed', 'rejected'))
	)`,
	`CREATE INDEX IF NOT EXISTS idx_report_events_created_at ON report_events (created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_report_events_status ON report_events (status)`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT users_username_key UNIQUE (username)
	)`,
	`CREATE TABLE IF NOT EXISTS feedback (
		id UUID PRIMARY KEY,
		user_id UUID REFERENCES users (id),
		rating INTEGER NOT NULL,
		comment TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT rating_range CHECK (rating >= 1 AND rating <= 5)
	)`,
}

// Migrate applies the schema
func Migrate(ctx context.Context, db *database.DB) error {
	for _, stmt := range Schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
