package handler_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insideimaging/insideimaging-backend/internal/report/detector"
	"github.com/insideimaging/insideimaging-backend/internal/report/domain"
	"github.com/insideimaging/insideimaging-backend/internal/report/extractor"
	"github.com/insideimaging/insideimaging-backend/internal/report/handler"
	"github.com/insideimaging/insideimaging-backend/internal/report/service"
	"github.com/insideimaging/insideimaging-backend/internal/report/storage"
	"github.com/insideimaging/insideimaging-backend/internal/report/summarizer"
	"github.com/insideimaging/insideimaging-backend/internal/report/validator"
	"github.com/insideimaging/insideimaging-backend/pkg/logger"
	"github.com/insideimaging/insideimaging-backend/pkg/testutil"
)

type stubExtractor struct{}

func (stubExtractor) Name() string                             { return "stub" }
func (stubExtractor) CanExtract(format domain.FileFormat) bool { return format == domain.FormatText }
func (stubExtractor) Extract(context.Context, []byte) (string, error) {
	return "Age: 40\nSex: F\nshort stub text", nil
}

type stubSummarizer struct{}

func (stubSummarizer) Name() string { return "stub" }
func (stubSummarizer) Summarize(_ context.Context, in summarizer.Input) (domain.StructuredSummary, error) {
	return domain.StructuredSummary{Language: in.Language}, nil
}

type stubEventRecorder struct{}

func (stubEventRecorder) SaveEvent(context.Context, *domain.ReportEvent) error { return nil }

type stubFeedbackStore struct {
	entries []domain.Feedback
}

func (s *stubFeedbackStore) Create(_ context.Context, f *domain.Feedback) error {
	f.ID = "feedback-1"
	f.CreatedAt = time.Now()
	s.entries = append(s.entries, *f)
	return nil
}

func (s *stubFeedbackStore) List(context.Context, int) ([]domain.Feedback, error) {
	return s.entries, nil
}

func (s *stubFeedbackStore) AverageRating(context.Context) (float64, error) {
	return 4.2, nil
}

type stubStatsProvider struct{}

func (stubStatsProvider) GetStats(context.Context) (*domain.UsageStats, error) {
	return &domain.UsageStats{
		TotalReports: 12,
		ByModality:   map[string]int64{"CT": 7, "MRI": 5},
	}, nil
}

type stubEventLister struct{}

func (stubEventLister) GetRecent(_ context.Context, limit int) ([]domain.ReportEvent, error) {
	return []domain.ReportEvent{{JobID: "job-1", Status: domain.EventStatusProcessed}}, nil
}

func newRouter(t *testing.T) (chi.Router, *testutil.MockPublisher) {
	t.Helper()

	log := logger.New("handler-test", "test")
	store := storage.NewJobStore(time.Minute)
	t.Cleanup(store.Close)

	publisher := testutil.NewMockPublisher()

	reports := service.NewService(
		extractor.NewRegistry(stubExtractor{}),
		validator.New(validator.DefaultConfig()),
		detector.New(detector.DefaultConfig(), log),
		[]summarizer.Summarizer{stubSummarizer{}},
		store,
		stubEventRecorder{},
		publisher,
		log,
	)
	feedback := service.NewFeedbackService(&stubFeedbackStore{}, stubStatsProvider{}, publisher, log)

	h := handler.NewHandler(reports, feedback, stubEventLister{}, log)

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/reports", h.Upload)
		r.Get("/reports/{jobID}", h.GetJob)
		r.Get("/stats", h.Stats)
		r.Get("/events", h.RecentEvents)
		r.Post("/feedback", h.SubmitFeedback)
		r.Get("/feedback", h.ListFeedback)
	})
	return r, publisher
}

func TestUpload_WithFile(t *testing.T) {
	router, _ := newRouter(t)

	req := testutil.NewMultipartRequest(t, "/api/v1/reports", "file", "report.txt",
		[]byte("CT brain report text upload"), map[string]string{"language": "English"})
	rr := testutil.ExecuteRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusAccepted)
	testutil.AssertBodyContains(t, rr, "job_id")
}

func TestUpload_PastedText(t *testing.T) {
	router, _ := newRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("report_text", "CT brain report pasted as text"))
	require.NoError(t, mw.WriteField("language", "Kiswahili"))
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, "/api/v1/reports", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rr := testutil.ExecuteRequest(router, req)
	testutil.AssertStatus(t, rr, http.StatusAccepted)
	testutil.AssertBodyContains(t, rr, "Kiswahili")
}

func TestUpload_MissingBody(t *testing.T) {
	router, _ := newRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("language", "English"))
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, "/api/v1/reports", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rr := testutil.ExecuteRequest(router, req)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
	testutil.AssertBodyContains(t, rr, "report_text")
}

func TestUpload_UnsupportedFormat(t *testing.T) {
	router, _ := newRouter(t)

	junk := []byte{0x00, 0x01, 0xff, 0xfe, 0x02, 0x00, 0x10, 0x80}
	req := testutil.NewMultipartRequest(t, "/api/v1/reports", "file", "report.bin", junk, nil)
	rr := testutil.ExecuteRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusUnsupportedMediaType)
}

func TestUpload_InvalidShowDiagrams(t *testing.T) {
	router, _ := newRouter(t)

	req := testutil.NewMultipartRequest(t, "/api/v1/reports", "file", "report.txt",
		[]byte("CT brain report"), map[string]string{"show_diagrams": "maybe"})
	rr := testutil.ExecuteRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusBadRequest)
	testutil.AssertBodyContains(t, rr, "show_diagrams")
}

func TestGetJob_NotFound(t *testing.T) {
	router, _ := newRouter(t)

	req := testutil.NewHTTPRequest(http.MethodGet, "/api/v1/reports/unknown-job-id", nil)
	rr := testutil.ExecuteRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestGetJob_AfterUpload(t *testing.T) {
	router, _ := newRouter(t)

	req := testutil.NewMultipartRequest(t, "/api/v1/reports", "file", "report.txt",
		[]byte("CT brain report text upload"), nil)
	rr := testutil.ExecuteRequest(router, req)
	testutil.AssertStatus(t, rr, http.StatusAccepted)

	var uploadResp struct {
		Data domain.ReportJob `json:"data"`
	}
	testutil.ParseJSONBody(t, rr, &uploadResp)
	require.NotEmpty(t, uploadResp.Data.JobID)

	getReq := testutil.NewHTTPRequest(http.MethodGet, "/api/v1/reports/"+uploadResp.Data.JobID, nil)
	getRR := testutil.ExecuteRequest(router, getReq)

	testutil.AssertStatus(t, getRR, http.StatusOK)
	testutil.AssertBodyContains(t, getRR, uploadResp.Data.JobID)
}

func TestSubmitFeedback(t *testing.T) {
	router, publisher := newRouter(t)

	req := testutil.NewHTTPRequest(http.MethodPost, "/api/v1/feedback", map[string]interface{}{
		"rating":  5,
		"comment": "Very clear explanation",
	})
	rr := testutil.ExecuteRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusCreated)
	testutil.AssertBodyContains(t, rr, "feedback-1")
	publisher.AssertEventPublished(t, "feedback.submitted")
}

func TestSubmitFeedback_InvalidRating(t *testing.T) {
	router, _ := newRouter(t)

	req := testutil.NewHTTPRequest(http.MethodPost, "/api/v1/feedback", map[string]interface{}{
		"rating": 9,
	})
	rr := testutil.ExecuteRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestStats(t *testing.T) {
	router, _ := newRouter(t)

	req := testutil.NewHTTPRequest(http.MethodGet, "/api/v1/stats", nil)
	rr := testutil.ExecuteRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertBodyContains(t, rr, "total_reports")
	testutil.AssertBodyContains(t, rr, "average_rating")
}

func TestRecentEvents(t *testing.T) {
	router, _ := newRouter(t)

	req := testutil.NewHTTPRequest(http.MethodGet, "/api/v1/events", nil)
	rr := testutil.ExecuteRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertBodyContains(t, rr, "job-1")
}

func TestRecentEvents_InvalidLimit(t *testing.T) {
	router, _ := newRouter(t)

	req := testutil.NewHTTPRequest(http.MethodGet, "/api/v1/events?limit=500", nil)
	rr := testutil.ExecuteRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusBadRequest)
	assert.Contains(t, rr.Body.String(), "limit")
}
