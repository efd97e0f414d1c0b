package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insideimaging/insideimaging-backend/internal/report/domain"
	"github.com/insideimaging/insideimaging-backend/internal/report/repository"
	"github.com/insideimaging/insideimaging-backend/pkg/database"
	apperrors "github.com/insideimaging/insideimaging-backend/pkg/errors"
	"github.com/insideimaging/insideimaging-backend/pkg/logger"
	"github.com/insideimaging/insideimaging-backend/pkg/testutil"
)

var eventColumns = []string{
	"id", "job_id", "patient_name", "patient_age", "patient_sex",
	"modality", "body_region", "study", "status",
	"disease_tags", "organ_tags", "condition_tags",
	"language", "word_count", "duration_ms", "created_at",
}

func newTestRepo(t *testing.T) (*repository.ReportRepository, *testutil.MockDB) {
	mockDB := testutil.NewMockDB(t)
	t.Cleanup(func() { mockDB.Close() })

	db := database.Wrap(mockDB.DB, logger.New("repository-test", "test"))
	return repository.NewReportRepository(db), mockDB
}

func TestReportRepository_SaveEvent(t *testing.T) {
	repo, mockDB := newTestRepo(t)
	ctx := context.Background()

	age := 45
	event := &domain.ReportEvent{
		JobID:       "3f2a9c1d4e5b6a7f8091a2b3c4d5e6f7",
		PatientName: "J*** D***",
		PatientAge:  &age,
		PatientSex:  "male",
		Modality:    "CT",
		BodyRegion:  "head",
		Study:       "CT BRAIN PLAIN AND CONTRAST",
		Status:      domain.EventStatusProcessed,
		DiseaseTags: []string{"Hemorrhage", "hemorrhage", "oncology"},
		OrganTags:   []string{"brain"},
		Language:    "English",
		WordCount:   142,
		DurationMs:  900,
	}

	created := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	mockDB.ExpectQuery("INSERT INTO report_events").
		WithArgs(
			testutil.AnyUUID{},
			event.JobID,
			"J*** D***",
			45,
			"male",
			"CT",
			"head",
			"CT BRAIN PLAIN AND CONTRAST",
			"processed",
			"hemorrhage,oncology",
			"brain",
			"",
			"English",
			142,
			int64(900),
		).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	err := repo.SaveEvent(ctx, event)
	require.NoError(t, err)

	assert.NotEmpty(t, event.ID, "expected a generated event ID")
	assert.Equal(t, created, event.CreatedAt)
	assert.NoError(t, mockDB.Mock.ExpectationsWereMet())
}

func TestReportRepository_SaveEvent_KeepsProvidedID(t *testing.T) {
	repo, mockDB := newTestRepo(t)
	ctx := context.Background()

	event := &domain.ReportEvent{
		ID:     "b5e0c9c2-1d7f-4a38-9c41-2f6b8d1e0a55",
		JobID:  "deadbeefdeadbeefdeadbeefdeadbeef",
		Status: domain.EventStatusRejected,
	}

	mockDB.ExpectQuery("INSERT INTO report_events").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	err := repo.SaveEvent(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, "b5e0c9c2-1d7f-4a38-9c41-2f6b8d1e0a55", event.ID)
}

func TestReportRepository_GetByJobID(t *testing.T) {
	repo, mockDB := newTestRepo(t)
	ctx := context.Background()

	created := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	rows := sqlmock.NewRows(eventColumns).AddRow(
		"b5e0c9c2-1d7f-4a38-9c41-2f6b8d1e0a55",
		"3f2a9c1d4e5b6a7f8091a2b3c4d5e6f7",
		"J*** D***",
		nil,
		"female",
		"MRI",
		"lumbar spine",
		"MRI LUMBAR SPINE",
		"processed",
		"degeneration,normal",
		"",
		"disc herniation",
		"Kiswahili",
		98,
		int64(1200),
		created,
	)
	mockDB.ExpectQuery("FROM report_events").
		WithArgs("3f2a9c1d4e5b6a7f8091a2b3c4d5e6f7").
		WillReturnRows(rows)

	event, err := repo.GetByJobID(ctx, "3f2a9c1d4e5b6a7f8091a2b3c4d5e6f7")
	require.NoError(t, err)
	require.NotNil(t, event)

	assert.Equal(t, "MRI", event.Modality)
	assert.Nil(t, event.PatientAge)
	assert.Equal(t, []string{"degeneration", "normal"}, event.DiseaseTags)
	assert.Nil(t, event.OrganTags)
	assert.Equal(t, []string{"disc herniation"}, event.ConditionTags)
	assert.Equal(t, created, event.CreatedAt)
}

func TestReportRepository_GetByJobID_NotFound(t *testing.T) {
	repo, mockDB := newTestRepo(t)
	ctx := context.Background()

	mockDB.ExpectQuery("FROM report_events").
		WithArgs("unknown-job").
		WillReturnError(sql.ErrNoRows)

	event, err := repo.GetByJobID(ctx, "unknown-job")
	assert.Nil(t, event)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T", err)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestReportRepository_GetRecent(t *testing.T) {
	repo, mockDB := newTestRepo(t)
	ctx := context.Background()

	now := time.Now().UTC()
	rows := sqlmock.NewRows(eventColumns).
		AddRow("id-1", "job-1", "A*** B***", 33, "male", "CT", "chest", "CT CHEST",
			"processed", "infection", "lungs", "pneumonia", "English", 120, int64(800), now).
		AddRow("id-2", "job-2", "", nil, "", "", "", "", "rejected",
			"", "", "", "English", 0, int64(50), now.Add(-time.Hour))
	mockDB.ExpectQuery("ORDER BY created_at DESC").
		WithArgs(20).
		WillReturnRows(rows)

	events, err := repo.GetRecent(ctx, 20)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "job-1", events[0].JobID)
	assert.Equal(t, []string{"pneumonia"}, events[0].ConditionTags)
	assert.Equal(t, domain.EventStatusRejected, events[1].Status)
	assert.Nil(t, events[1].DiseaseTags)
}

func TestReportRepository_GetStats(t *testing.T) {
	repo, mockDB := newTestRepo(t)
	ctx := context.Background()

	mockDB.ExpectQuery(`SELECT COUNT(*) FROM report_events WHERE status = 'processed'`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mockDB.ExpectQuery(`SELECT COUNT(*) FROM report_events WHERE status = 'rejected'`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mockDB.ExpectQuery(`interval '30 days'`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mockDB.ExpectQuery(`AVG(word_count)`).
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(132.5))
	mockDB.ExpectQuery("GROUP BY modality").
		WillReturnRows(sqlmock.NewRows([]string{"modality", "count"}).
			AddRow("CT", 3).AddRow("MRI", 2))
	mockDB.ExpectQuery("GROUP BY body_region").
		WillReturnRows(sqlmock.NewRows([]string{"body_region", "count"}).
			AddRow("head", 4).AddRow("chest", 1))
	mockDB.ExpectQuery("GROUP BY patient_sex").
		WillReturnRows(sqlmock.NewRows([]string{"patient_sex", "count"}).
			AddRow("male", 3).AddRow("female", 2))
	mockDB.ExpectQuery("SELECT patient_age").
		WillReturnRows(sqlmock.NewRows([]string{"patient_age"}).
			AddRow(10).AddRow(18).AddRow(30).AddRow(45).AddRow(70))
	mockDB.ExpectQuery("SELECT disease_tags").
		WillReturnRows(sqlmock.NewRows([]string{"disease_tags"}).
			AddRow("hemorrhage,oncology").AddRow("normal").AddRow("hemorrhage"))

	stats, err := repo.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(5), stats.TotalReports)
	assert.Equal(t, int64(1), stats.RejectedCount)
	assert.Equal(t, int64(4), stats.Last30Days)
	assert.InDelta(t, 132.5, stats.AvgWordCount, 0.001)
	assert.Equal(t, map[string]int64{"CT": 3, "MRI": 2}, stats.ByModality)
	assert.Equal(t, map[string]int64{"head": 4, "chest": 1}, stats.ByBodyRegion)
	assert.Equal(t, map[string]int64{"male": 3, "female": 2}, stats.BySex)
	assert.Equal(t, map[string]int64{"0-17": 1, "18-30": 2, "31-50": 1, "66+": 1}, stats.ByAgeRange)
	assert.Equal(t, map[string]int64{"hemorrhage": 2, "oncology": 1, "normal": 1}, stats.ByDiseaseTag)
	assert.NoError(t, mockDB.Mock.ExpectationsWereMet())
}

func TestFeedbackRepository_Create(t *testing.T) {
	mockDB := testutil.NewMockDB(t)
	t.Cleanup(func() { mockDB.Close() })
	repo := repository.NewFeedbackRepository(database.Wrap(mockDB.DB, logger.New("repository-test", "test")))
	ctx := context.Background()

	created := time.Date(2026, 3, 14, 11, 0, 0, 0, time.UTC)
	mockDB.ExpectQuery("INSERT INTO feedback").
		WithArgs(testutil.AnyUUID{}, nil, 4, "Clear summary, helpful diagrams").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	feedback := &domain.Feedback{
		Rating:  4,
		Comment: "Clear summary, helpful diagrams",
	}
	err := repo.Create(ctx, feedback)
	require.NoError(t, err)

	assert.NotEmpty(t, feedback.ID)
	assert.Equal(t, created, feedback.CreatedAt)
}

func TestFeedbackRepository_AverageRating(t *testing.T) {
	mockDB := testutil.NewMockDB(t)
	t.Cleanup(func() { mockDB.Close() })
	repo := repository.NewFeedbackRepository(database.Wrap(mockDB.DB, logger.New("repository-test", "test")))
	ctx := context.Background()

	mockDB.ExpectQuery("COALESCE(AVG(rating), 0)").
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(3.5))

	avg, err := repo.AverageRating(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, avg, 0.001)
}
