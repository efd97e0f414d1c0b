// Package service orchestrates the report pipeline: detect format →
// extract → redact → validate → parse → summarize → detect organs and
// conditions → persist the anonymized event. Raw upload bytes are zeroed
// as soon as extraction finishes, and raw text never outlives the
// background goroutine that processes it.
package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/insideimaging/insideimaging-backend/internal/report/detector"
	"github.com/insideimaging/insideimaging-backend/internal/report/domain"
	"github.com/insideimaging/insideimaging-backend/internal/report/extractor"
	"github.com/insideimaging/insideimaging-backend/internal/report/parser"
	"github.com/insideimaging/insideimaging-backend/internal/report/redactor"
	"github.com/insideimaging/insideimaging-backend/internal/report/repository"
	"github.com/insideimaging/insideimaging-backend/internal/report/storage"
	"github.com/insideimaging/insideimaging-backend/internal/report/summarizer"
	"github.com/insideimaging/insideimaging-backend/internal/report/validator"
	"github.com/insideimaging/insideimaging-backend/pkg/logger"
	"github.com/insideimaging/insideimaging-backend/pkg/messaging"
)

// EventRecorder persists anonymized report events
type EventRecorder interface {
	SaveEvent(ctx context.Context, event *domain.ReportEvent) error
}

// Publisher sends pipeline events to the message broker
type Publisher interface {
	Publish(ctx context.Context, eventType string, data interface{}) error
}

// Service runs uploads through the processing pipeline
type Service struct {
	registry    *extractor.Registry
	validator   *validator.Validator
	detector    *detector.Detector
	summarizers []summarizer.Summarizer
	store       *storage.JobStore
	events      EventRecorder
	publisher   Publisher
	log         *logger.Logger
}

// NewService creates a new report processing service. Summarizers are
// tried in order; later entries act as fallbacks when earlier ones fail.
func NewService(
	registry *extractor.Registry,
	v *validator.Validator,
	d *detector.Detector,
	summarizers []summarizer.Summarizer,
	store *storage.JobStore,
	events EventRecorder,
	publisher Publisher,
	log *logger.Logger,
) *Service {
	return &Service{
		registry:    registry,
		validator:   v,
		detector:    d,
		summarizers: summarizers,
		store:       store,
		events:      events,
		publisher:   publisher,
		log:         log,
	}
}

// StartProcessing creates a job for the uploaded bytes and processes them
// asynchronously. Returns the job immediately so the caller can poll for
// results. Format detection runs synchronously so unsupported uploads fail
// with an error instead of a doomed job.
func (s *Service) StartProcessing(ctx context.Context, data []byte, fileName, language string, showDiagrams bool) (*domain.ReportJob, error) {
	format, err := extractor.DetectFormat(data)
	if err != nil {
		storage.ZeroBytes(data)
		return nil, err
	}

	jobID := storage.GenerateJobID()
	job := &domain.ReportJob{
		JobID:        jobID,
		Status:       domain.StatusProcessing,
		FileName:     fileName,
		Format:       format,
		Language:     summarizer.NormalizeLanguage(language),
		ShowDiagrams: showDiagrams,
		CreatedAt:    time.Now(),
	}
	s.store.StoreJob(job)

	ext := s.registry.FindExtractor(format)
	if ext == nil {
		s.store.UpdateJob(jobID, func(j *domain.ReportJob) {
			j.Status = domain.StatusFailed
			j.Error = fmt.Sprintf("no extractor available for format: %s", format)
		})
		storage.ZeroBytes(data)
		return s.store.GetJob(jobID), nil
	}

	s.log.Info().
		Str("job_id", jobID).
		Str("format", string(format)).
		Str("language", job.Language).
		Msg("report upload accepted")

	go s.processAsync(jobID, data, ext, job.Language, showDiagrams)

	return s.store.GetJob(jobID), nil
}

// GetJob retrieves a report job by ID
func (s *Service) GetJob(jobID string) *domain.ReportJob {
	return s.store.GetJob(jobID)
}

// processAsync runs the pipeline in a background goroutine. The request
// context is deliberately not used: a caller disconnect must not abandon
// a half-processed upload.
func (s *Service) processAsync(jobID string, data []byte, ext extractor.Extractor, language string, showDiagrams bool) {
	bgCtx := context.Background()
	start := time.Now()
	log := s.log.WithJobID(jobID)

	log.Info().
		Str("extractor", ext.Name()).
		Msg("starting text extraction")

	text, err := ext.Extract(bgCtx, data)
	storage.ZeroBytes(data)
	if err != nil {
		s.failJob(jobID, err)
		return
	}

	red, err := redactor.Redact(text)
	if err != nil {
		s.failJob(jobID, err)
		return
	}

	verdict := s.validator.Validate(red.Filtered)
	if !verdict.Accepted {
		s.rejectJob(bgCtx, jobID, language, verdict.Reason, time.Since(start))
		return
	}

	meta := parser.ParseMetadata(red.Filtered)
	secs := parser.ParseSections(red.Filtered)

	sex := red.PHI.Sex
	if sex == "" {
		sex = meta.Sex
	}
	ageStr := meta.Age
	if red.PHI.Age != nil {
		ageStr = strconv.Itoa(*red.PHI.Age)
	}

	summary, err := s.summarize(bgCtx, summarizer.Input{
		Sections: secs,
		Study:    meta.Study,
		Age:      ageStr,
		Sex:      sex,
		Language: language,
	}, log)
	if err != nil {
		s.failJob(jobID, err)
		return
	}

	organs, conditions := s.detector.Detect(secs.Findings, secs.Impression, meta.Study, showDiagrams)

	lower := strings.ToLower(meta.Study + "\n" + red.Filtered)
	modality := parser.InferModality(lower)
	bodyRegion := parser.InferBodyRegion(lower)

	tagBlob := summary.Findings + " " + summary.Conclusion + " " + summary.Concern
	diseaseTags := repository.DetectDiseaseTags(tagBlob)

	wordCount := len(strings.Fields(red.Filtered))
	sentenceCount := len(detector.SplitSentences(red.Filtered))

	result := &domain.ReportResult{
		Summary: summary,
		Metadata: domain.ReportMetadata{
			PatientName: redactor.TruncateName(red.PHI.Name),
			PatientAge:  red.PHI.Age,
			PatientSex:  sex,
			StudyDate:   red.PHI.Date,
			Modality:    modality,
			BodyRegion:  bodyRegion,
			ReferringNo: red.PHI.RefNo,
		},
		Organs:      organs,
		Conditions:  conditions,
		DiseaseTags: diseaseTags,
		Stats: domain.ReportStats{
			WordCount:     wordCount,
			SentenceCount: sentenceCount,
		},
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}

	s.store.UpdateJob(jobID, func(j *domain.ReportJob) {
		j.Status = domain.StatusCompleted
		j.Result = result
	})

	event := &domain.ReportEvent{
		JobID:         jobID,
		PatientName:   result.Metadata.PatientName,
		PatientAge:    red.PHI.Age,
		PatientSex:    sex,
		Modality:      modality,
		BodyRegion:    bodyRegion,
		Study:         meta.Study,
		Status:        domain.EventStatusProcessed,
		DiseaseTags:   diseaseTags,
		OrganTags:     organNames(organs),
		ConditionTags: conditionNames(conditions),
		Language:      language,
		WordCount:     wordCount,
		DurationMs:    result.ProcessingTimeMs,
	}
	if err := s.events.SaveEvent(bgCtx, event); err != nil {
		log.Error().Err(err).Msg("failed to persist report event")
	}

	if err := s.publisher.Publish(bgCtx, messaging.EventReportProcessed, messaging.ReportProcessedEvent{
		JobID:       jobID,
		Modality:    modality,
		BodyRegion:  bodyRegion,
		PatientAge:  red.PHI.Age,
		PatientSex:  sex,
		Organs:      organNames(organs),
		Conditions:  conditionNames(conditions),
		DiseaseTags: diseaseTags,
		Language:    language,
		DurationMs:  result.ProcessingTimeMs,
	}); err != nil {
		log.Warn().Err(err).Msg("failed to publish processed event")
	}

	log.Info().
		Int("organs", len(organs)).
		Int("conditions", len(conditions)).
		Int64("duration_ms", result.ProcessingTimeMs).
		Msg("report processing completed")
}

// summarize tries the configured summarizers in order and returns the
// first successful result.
func (s *Service) summarize(ctx context.Context, in summarizer.Input, log *logger.Logger) (domain.StructuredSummary, error) {
	var lastErr error
	for _, sum := range s.summarizers {
		log.Info().
			Str("summarizer", sum.Name()).
			Msg("trying summarizer")

		summary, err := sum.Summarize(ctx, in)
		if err == nil {
			return summary, nil
		}
		lastErr = err
		log.Warn().Err(err).
			Str("summarizer", sum.Name()).
			Msg("summarizer failed, trying next")
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no summarizer configured")
	}
	return domain.StructuredSummary{}, lastErr
}

func (s *Service) failJob(jobID string, err error) {
	s.store.UpdateJob(jobID, func(j *domain.ReportJob) {
		j.Status = domain.StatusFailed
		j.Error = err.Error()
	})
	s.log.WithJobID(jobID).Error().Err(err).Msg("report processing failed")
}

// rejectJob marks the job rejected and records the rejection for analytics.
// Rejected events carry no patient fields at all.
func (s *Service) rejectJob(ctx context.Context, jobID, language string, reason domain.RejectReason, elapsed time.Duration) {
	s.store.UpdateJob(jobID, func(j *domain.ReportJob) {
		j.Status = domain.StatusRejected
		j.RejectReason = reason
	})

	log := s.log.WithJobID(jobID)

	event := &domain.ReportEvent{
		JobID:      jobID,
		Status:     domain.EventStatusRejected,
		Language:   language,
		DurationMs: elapsed.Milliseconds(),
	}
	if err := s.events.SaveEvent(ctx, event); err != nil {
		log.Error().Err(err).Msg("failed to persist rejected event")
	}

	if err := s.publisher.Publish(ctx, messaging.EventReportRejected, messaging.ReportRejectedEvent{
		JobID:   jobID,
		Reasons: []string{string(reason)},
	}); err != nil {
		log.Warn().Err(err).Msg("failed to publish rejected event")
	}

	log.Info().
		Str("reason", string(reason)).
		Msg("report rejected by validator")
}

func organNames(organs []domain.OrganMention) []string {
	names := make([]string, len(organs))
	for i, o := range organs {
		names[i] = string(o.Organ)
	}
	return names
}

func conditionNames(conditions []domain.ConditionMention) []string {
	names := make([]string, len(conditions))
	for i, c := range conditions {
		names[i] = c.Name
	}
	return names
}
