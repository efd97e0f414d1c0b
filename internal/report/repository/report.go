// Package repository persists anonymized report events and user feedback.
// Raw report text never reaches this layer.
package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/insideimaging/insideimaging-backend/internal/report/domain"
	"github.com/insideimaging/insideimaging-backend/pkg/database"
	apperrors "github.com/insideimaging/insideimaging-backend/pkg/errors"
)

// ReportRepository handles report event persistence and aggregation
type ReportRepository struct {
	db *database.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *database.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// SaveEvent inserts one anonymized report event
func (r *ReportRepository) SaveEvent(ctx context.Context, event *domain.ReportEvent) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}

	query := `
		INSERT INTO report_events (
			id, job_id, patient_name, patient_age, patient_sex,
			modality, body_region, study, status,
			disease_tags, organ_tags, condition_tags,
			language, word_count, duration_ms
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING created_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		event.ID,
		event.JobID,
		event.PatientName,
		event.PatientAge,
		event.PatientSex,
		event.Modality,
		event.BodyRegion,
		event.Study,
		event.Status,
		joinTags(event.DiseaseTags),
		joinTags(event.OrganTags),
		joinTags(event.ConditionTags),
		event.Language,
		event.WordCount,
		event.DurationMs,
	).Scan(&event.CreatedAt)
	if err != nil {
		return database.WrapError(err)
	}
	return nil
}

// eventRow mirrors the stored row with tags in their flattened text form
type eventRow struct {
	domain.ReportEvent
	DiseaseTagsRaw   string `db:"disease_tags"`
	OrganTagsRaw     string `db:"organ_tags"`
	ConditionTagsRaw string `db:"condition_tags"`
}

func (row *eventRow) toEvent() domain.ReportEvent {
	event := row.ReportEvent
	event.DiseaseTags = splitTags(row.DiseaseTagsRaw)
	event.OrganTags = splitTags(row.OrganTagsRaw)
	event.ConditionTags = splitTags(row.ConditionTagsRaw)
	return event
}

// GetByJobID returns the stored event for a job
func (r *ReportRepository) GetByJobID(ctx context.Context, jobID string) (*domain.ReportEvent, error) {
	query := `
		SELECT id, job_id, patient_name, patient_age, patient_sex,
		       modality, body_region, study, status,
		       disease_tags, organ_tags, condition_tags,
		       language, word_count, duration_ms, created_at
		FROM report_events
		WHERE job_id = $1
	`
	var row eventRow
	err := r.db.GetContext(ctx, &row, query, jobID)
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("report event")
	}
	if err != nil {
		return nil, database.WrapError(err)
	}
	event := row.toEvent()
	return &event, nil
}

// GetRecent returns the newest events, most recent first
func (r *ReportRepository) GetRecent(ctx context.Context, limit int) ([]domain.ReportEvent, error) {
	query := `
		SELECT id, job_id, patient_name, patient_age, patient_sex,
		       modality, body_region, study, status,
		       disease_tags, organ_tags, condition_tags,
		       language, word_count, duration_ms, created_at
		FROM report_events
		ORDER BY created_at DESC
		LIMIT $1
	`
	var rows []eventRow
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, database.WrapError(err)
	}
	events := make([]domain.ReportEvent, len(rows))
	for i := range rows {
		events[i] = rows[i].toEvent()
	}
	return events, nil
}

// GetStats aggregates the anonymized events for the dashboard. Age ranges
// and tag counts are bucketed in Go since tags live in flattened text
// columns.
func (r *ReportRepository) GetStats(ctx context.Context) (*domain.UsageStats, error) {
	stats := &domain.UsageStats{
		ByModality:   make(map[string]int64),
		ByBodyRegion: make(map[string]int64),
		BySex:        make(map[string]int64),
		ByAgeRange:   make(map[string]int64),
		ByDiseaseTag: make(map[string]int64),
	}

	err := r.db.GetContext(ctx, &stats.TotalReports,
		`SELECT COUNT(*) FROM report_events WHERE status = 'processed'`)
	if err != nil {
		return nil, database.WrapError(err)
	}

	err = r.db.GetContext(ctx, &stats.RejectedCount,
		`SELECT COUNT(*) FROM report_events WHERE status = 'rejected'`)
	if err != nil {
		return nil, database.WrapError(err)
	}

	err = r.db.GetContext(ctx, &stats.Last30Days,
		`SELECT COUNT(*) FROM report_events WHERE status = 'processed' AND created_at > now() - interval '30 days'`)
	if err != nil {
		return nil, database.WrapError(err)
	}

	err = r.db.GetContext(ctx, &stats.AvgWordCount,
		`SELECT COALESCE(AVG(word_count), 0) FROM report_events WHERE status = 'processed'`)
	if err != nil {
		return nil, database.WrapError(err)
	}

	if err := r.countGroups(ctx, stats.ByModality,
		`SELECT modality, COUNT(*) FROM report_events WHERE status = 'processed' AND modality != '' GROUP BY modality`); err != nil {
		return nil, err
	}
	if err := r.countGroups(ctx, stats.ByBodyRegion,
		`SELECT body_region, COUNT(*) FROM report_events WHERE status = 'processed' AND body_region != '' GROUP BY body_region`); err != nil {
		return nil, err
	}
	if err := r.countGroups(ctx, stats.BySex,
		`SELECT patient_sex, COUNT(*) FROM report_events WHERE status = 'processed' AND patient_sex != '' GROUP BY patient_sex`); err != nil {
		return nil, err
	}

	var ages []int
	err = r.db.SelectContext(ctx, &ages,
		`SELECT patient_age FROM report_events WHERE status = 'processed' AND patient_age IS NOT NULL`)
	if err != nil {
		return nil, database.WrapError(err)
	}
	for _, age := range ages {
		stats.ByAgeRange[ageRange(age)]++
	}

	var tagRows []string
	err = r.db.SelectContext(ctx, &tagRows,
		`SELECT disease_tags FROM report_events WHERE status = 'processed' AND disease_tags != ''`)
	if err != nil {
		return nil, database.WrapError(err)
	}
	for _, raw := range tagRows {
		for _, tag := range splitTags(raw) {
			stats.ByDiseaseTag[tag]++
		}
	}

	return stats, nil
}

func (r *ReportRepository) countGroups(ctx context.Context, into map[string]int64, query string) error {
	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		return database.WrapError(err)
	}
	defer rows.Close()
	for rows.Next() {
		var label string
		var count int64
		if err := rows.Scan(&label, &count); err != nil {
			return err
		}
		into[label] = count
	}
	return rows.Err()
}

func ageRange(age int) string {
	switch {
	case age < 18:
		return "0-17"
	case age <= 30:
		return "18-30"
	case age <= 50:
		return "31-50"
	case age <= 65:
		return "51-65"
	default:
		return "66+"
	}
}
