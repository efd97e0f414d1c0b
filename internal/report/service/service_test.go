package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insideimaging/insideimaging-backend/internal/report/detector"
	"github.com/insideimaging/insideimaging-backend/internal/report/domain"
	"github.com/insideimaging/insideimaging-backend/internal/report/extractor"
	"github.com/insideimaging/insideimaging-backend/internal/report/service"
	"github.com/insideimaging/insideimaging-backend/internal/report/storage"
	"github.com/insideimaging/insideimaging-backend/internal/report/summarizer"
	"github.com/insideimaging/insideimaging-backend/internal/report/validator"
	apperrors "github.com/insideimaging/insideimaging-backend/pkg/errors"
	"github.com/insideimaging/insideimaging-backend/pkg/logger"
	"github.com/insideimaging/insideimaging-backend/pkg/messaging"
)

const sampleReport = `KENYATTA NATIONAL HOSPITAL
DEPARTMENT OF RADIOLOGY

Name:
Jane Doe
Age: 45
Date: 12/03/2026
Sex: M
Ref No: 12345

CT BRAIN PLAIN AND CONTRAST

CLINICAL HISTORY
Persistent headache with dizziness for two weeks. Clinical examination requested imaging correlation.

TECHNIQUE
Axial computed tomography images of the brain were acquired before and after intravenous contrast administration. Sagittal and coronal reformats were reviewed.

FINDINGS
There is an ill defined hypodense lesion in the right frontal lobe with surrounding edema. The ventricles are mildly prominent. No midline shift is seen. The visualized paranasal sinuses are clear. Bony calvarium is intact. The cerebellum and brainstem appear unremarkable. No acute intracranial hemorrhage is identified on this examination.

IMPRESSION
Right frontal lobe lesion with surrounding edema, further evaluation with contrast enhanced imaging is recommended. Clinical correlation advised.
`

// stubExtractor returns fixed text regardless of the uploaded bytes
type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) Name() string                               { return "stub" }
func (s *stubExtractor) CanExtract(format domain.FileFormat) bool   { return format == domain.FormatText }
func (s *stubExtractor) Extract(context.Context, []byte) (string, error) {
	return s.text, s.err
}

// stubSummarizer returns a canned summary or a fixed error
type stubSummarizer struct {
	name string
	err  error
}

func (s *stubSummarizer) Name() string { return s.name }
func (s *stubSummarizer) Summarize(_ context.Context, in summarizer.Input) (domain.StructuredSummary, error) {
	if s.err != nil {
		return domain.StructuredSummary{}, s.err
	}
	return domain.StructuredSummary{
		Reason:     "You had this scan because of ongoing headaches.",
		Technique:  "A CT scan of the head was taken.",
		Findings:   "There is a small abnormal area in the front right of the brain.",
		Conclusion: "An abnormal area was found that needs a closer look.",
		Concern:    "Your doctor will discuss further imaging with you.",
		Language:   in.Language,
	}, nil
}

// recordingStore captures persisted events; the pipeline writes from a
// background goroutine so access is locked
type recordingStore struct {
	mu     sync.Mutex
	events []domain.ReportEvent
}

func (r *recordingStore) SaveEvent(_ context.Context, event *domain.ReportEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *event)
	return nil
}

func (r *recordingStore) saved() []domain.ReportEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.ReportEvent, len(r.events))
	copy(out, r.events)
	return out
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []struct {
		Type    string
		Payload interface{}
	}
}

func (r *recordingPublisher) Publish(_ context.Context, eventType string, payload interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, struct {
		Type    string
		Payload interface{}
	}{eventType, payload})
	return nil
}

func (r *recordingPublisher) published() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]string, len(r.events))
	for i, e := range r.events {
		types[i] = e.Type
	}
	return types
}

func newTestService(t *testing.T, ext extractor.Extractor, summarizers ...summarizer.Summarizer) (*service.Service, *recordingStore, *recordingPublisher) {
	t.Helper()

	store := storage.NewJobStore(time.Minute)
	t.Cleanup(store.Close)

	events := &recordingStore{}
	publisher := &recordingPublisher{}

	log := logger.New("report-service-test", "test")
	svc := service.NewService(
		extractor.NewRegistry(ext),
		validator.New(validator.DefaultConfig()),
		detector.New(detector.DefaultConfig(), log),
		summarizers,
		store,
		events,
		publisher,
		log,
	)
	return svc, events, publisher
}

func waitForJob(t *testing.T, svc *service.Service, jobID string) *domain.ReportJob {
	t.Helper()
	require.Eventually(t, func() bool {
		job := svc.GetJob(jobID)
		return job != nil && job.Status != domain.StatusProcessing
	}, 2*time.Second, 10*time.Millisecond, "job never left processing state")
	return svc.GetJob(jobID)
}

func TestStartProcessing_CompletesPipeline(t *testing.T) {
	svc, events, publisher := newTestService(t,
		&stubExtractor{text: sampleReport},
		&stubSummarizer{name: "stub"},
	)

	job, err := svc.StartProcessing(context.Background(), []byte(sampleReport), "report.txt", "English", true)
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, domain.FormatText, job.Format)

	done := waitForJob(t, svc, job.JobID)
	require.Equal(t, domain.StatusCompleted, done.Status)
	require.NotNil(t, done.Result)

	result := done.Result
	assert.Equal(t, "English", result.Summary.Language)
	assert.Equal(t, "J*** D***", result.Metadata.PatientName)
	require.NotNil(t, result.Metadata.PatientAge)
	assert.Equal(t, 45, *result.Metadata.PatientAge)
	assert.Equal(t, "male", result.Metadata.PatientSex)
	assert.Equal(t, "CT", result.Metadata.Modality)
	assert.Equal(t, "head", result.Metadata.BodyRegion)
	assert.Greater(t, result.Stats.WordCount, 100)
	assert.Greater(t, result.Stats.SentenceCount, 3)

	var organs []domain.Organ
	for _, o := range result.Organs {
		organs = append(organs, o.Organ)
	}
	assert.Contains(t, organs, domain.OrganBrain)

	saved := events.saved()
	require.Len(t, saved, 1)
	assert.Equal(t, domain.EventStatusProcessed, saved[0].Status)
	assert.Equal(t, job.JobID, saved[0].JobID)
	assert.Equal(t, "J*** D***", saved[0].PatientName)
	assert.NotZero(t, saved[0].WordCount)

	assert.Contains(t, publisher.published(), messaging.EventReportProcessed)
}

func TestStartProcessing_UnsupportedFormat(t *testing.T) {
	svc, _, _ := newTestService(t,
		&stubExtractor{text: sampleReport},
		&stubSummarizer{name: "stub"},
	)

	junk := []byte{0x00, 0x01, 0x02, 0x03, 0xff, 0xfe, 0x00, 0x10}
	job, err := svc.StartProcessing(context.Background(), junk, "report.bin", "English", false)
	assert.Nil(t, job)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 415, appErr.StatusCode)
}

func TestStartProcessing_RejectsShortText(t *testing.T) {
	short := "Age: 30\nSex: F\nCT head scan note only."
	svc, events, publisher := newTestService(t,
		&stubExtractor{text: short},
		&stubSummarizer{name: "stub"},
	)

	job, err := svc.StartProcessing(context.Background(), []byte(short), "note.txt", "English", false)
	require.NoError(t, err)

	done := waitForJob(t, svc, job.JobID)
	assert.Equal(t, domain.StatusRejected, done.Status)
	assert.Equal(t, domain.RejectTooShort, done.RejectReason)
	assert.Nil(t, done.Result)

	saved := events.saved()
	require.Len(t, saved, 1)
	assert.Equal(t, domain.EventStatusRejected, saved[0].Status)
	assert.Empty(t, saved[0].PatientName)

	assert.Contains(t, publisher.published(), messaging.EventReportRejected)
}

func TestStartProcessing_ExtractorFailure(t *testing.T) {
	svc, events, _ := newTestService(t,
		&stubExtractor{err: fmt.Errorf("scrambled bytes")},
		&stubSummarizer{name: "stub"},
	)

	job, err := svc.StartProcessing(context.Background(), []byte("plain text upload"), "report.txt", "English", false)
	require.NoError(t, err)

	done := waitForJob(t, svc, job.JobID)
	assert.Equal(t, domain.StatusFailed, done.Status)
	assert.Contains(t, done.Error, "scrambled bytes")
	assert.Empty(t, events.saved())
}

func TestStartProcessing_MissingAge(t *testing.T) {
	noAge := "Sex: M\nCT scan of the head with no demographics block."
	svc, _, _ := newTestService(t,
		&stubExtractor{text: noAge},
		&stubSummarizer{name: "stub"},
	)

	job, err := svc.StartProcessing(context.Background(), []byte(noAge), "report.txt", "English", false)
	require.NoError(t, err)

	done := waitForJob(t, svc, job.JobID)
	assert.Equal(t, domain.StatusFailed, done.Status)
	assert.Contains(t, done.Error, "retake")
}

func TestStartProcessing_SummarizerFallback(t *testing.T) {
	svc, _, _ := newTestService(t,
		&stubExtractor{text: sampleReport},
		&stubSummarizer{name: "flaky", err: fmt.Errorf("model unavailable")},
		&stubSummarizer{name: "backup"},
	)

	job, err := svc.StartProcessing(context.Background(), []byte(sampleReport), "report.txt", "Kiswahili", false)
	require.NoError(t, err)

	done := waitForJob(t, svc, job.JobID)
	require.Equal(t, domain.StatusCompleted, done.Status)
	require.NotNil(t, done.Result)
	assert.Equal(t, "Kiswahili", done.Result.Summary.Language)
}

func TestStartProcessing_AllSummarizersFail(t *testing.T) {
	svc, events, _ := newTestService(t,
		&stubExtractor{text: sampleReport},
		&stubSummarizer{name: "flaky", err: fmt.Errorf("model unavailable")},
	)

	job, err := svc.StartProcessing(context.Background(), []byte(sampleReport), "report.txt", "English", false)
	require.NoError(t, err)

	done := waitForJob(t, svc, job.JobID)
	assert.Equal(t, domain.StatusFailed, done.Status)
	assert.Contains(t, done.Error, "model unavailable")
	assert.Empty(t, events.saved())
}

func TestStartProcessing_DiagramsFollowFlag(t *testing.T) {
	svc, _, _ := newTestService(t,
		&stubExtractor{text: sampleReport},
		&stubSummarizer{name: "stub"},
	)

	job, err := svc.StartProcessing(context.Background(), []byte(sampleReport), "report.txt", "English", false)
	require.NoError(t, err)

	done := waitForJob(t, svc, job.JobID)
	require.Equal(t, domain.StatusCompleted, done.Status)
	for _, organ := range done.Result.Organs {
		assert.Empty(t, organ.DiagramRef)
	}
	for _, cond := range done.Result.Conditions {
		assert.Empty(t, cond.ImageRef)
	}
}
