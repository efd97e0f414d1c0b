// Package handler exposes the report pipeline over HTTP. Uploads are held
// in memory only; the service zeroes the bytes once extraction finishes.
package handler

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/insideimaging/insideimaging-backend/internal/report/domain"
	"github.com/insideimaging/insideimaging-backend/internal/report/service"
	apperrors "github.com/insideimaging/insideimaging-backend/pkg/errors"
	"github.com/insideimaging/insideimaging-backend/pkg/httputil"
	"github.com/insideimaging/insideimaging-backend/pkg/logger"
)

const maxUploadSize = 20 << 20 // 20MB

const defaultListLimit = 20

// EventLister reads back persisted report events
type EventLister interface {
	GetRecent(ctx context.Context, limit int) ([]domain.ReportEvent, error)
}

// Handler handles HTTP requests for report processing
type Handler struct {
	reports  *service.Service
	feedback *service.FeedbackService
	events   EventLister
	log      *logger.Logger
}

// NewHandler creates a new report handler
func NewHandler(reports *service.Service, feedback *service.FeedbackService, events EventLister, log *logger.Logger) *Handler {
	return &Handler{
		reports:  reports,
		feedback: feedback,
		events:   events,
		log:      log,
	}
}

// Upload handles POST /reports
// Accepts multipart form with:
// - file: the report document (PDF, image, DOCX or plain text), OR
// - report_text: pasted report text
// - language: target summary language (English or Kiswahili)
// - show_diagrams: whether to include diagram and example image refs
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		httputil.Error(w, apperrors.BadRequest("file too large or invalid multipart form"))
		return
	}

	language := r.FormValue("language")

	showDiagrams := true
	if v := r.FormValue("show_diagrams"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			httputil.Error(w, apperrors.BadRequest("show_diagrams must be a boolean"))
			return
		}
		showDiagrams = parsed
	}

	data, fileName, err := h.readUpload(r)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	job, err := h.reports.StartProcessing(r.Context(), data, fileName, language, showDiagrams)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.Accepted(w, job)
}

// readUpload pulls the report bytes from either the file part or the
// pasted report_text field.
func (h *Handler) readUpload(r *http.Request) ([]byte, string, error) {
	file, header, err := r.FormFile("file")
	if err == nil {
		defer file.Close()
		data, readErr := io.ReadAll(file)
		if readErr != nil {
			return nil, "", apperrors.Internal("failed to read uploaded file")
		}
		return data, header.Filename, nil
	}

	if text := strings.TrimSpace(r.FormValue("report_text")); text != "" {
		return []byte(text), "pasted-report.txt", nil
	}

	return nil, "", apperrors.BadRequest("request must include a file or report_text")
}

// GetJob handles GET /reports/{jobID}
// Returns the job status; the result is included once processing completes.
func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	if jobID == "" {
		httputil.Error(w, apperrors.BadRequest("missing jobID parameter"))
		return
	}

	job := h.reports.GetJob(jobID)
	if job == nil {
		httputil.Error(w, apperrors.NotFound("report job"))
		return
	}

	httputil.JSON(w, http.StatusOK, job)
}

// Stats handles GET /stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, avgRating, err := h.feedback.Stats(r.Context())
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, map[string]interface{}{
		"usage":          stats,
		"average_rating": avgRating,
	})
}

// RecentEvents handles GET /events
// Returns the newest anonymized report events for the dashboard.
func (h *Handler) RecentEvents(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 100 {
			httputil.Error(w, apperrors.BadRequest("limit must be between 1 and 100"))
			return
		}
		limit = parsed
	}

	events, err := h.events.GetRecent(r.Context(), limit)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSONWithMeta(w, http.StatusOK, events, &httputil.Meta{
		PerPage: limit,
		Total:   int64(len(events)),
	})
}

type submitFeedbackRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

// SubmitFeedback handles POST /feedback
func (h *Handler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req submitFeedbackRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}
	if err := httputil.Validate(req); err != nil {
		httputil.Error(w, err)
		return
	}

	var userID *string
	if id := httputil.GetUserID(r.Context()); id != "" {
		userID = &id
	}

	feedback, err := h.feedback.Submit(r.Context(), req.Rating, req.Comment, userID)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.Created(w, feedback)
}

// ListFeedback handles GET /feedback
func (h *Handler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	entries, err := h.feedback.Recent(r.Context(), defaultListLimit)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSONWithMeta(w, http.StatusOK, entries, &httputil.Meta{
		PerPage: defaultListLimit,
		Total:   int64(len(entries)),
	})
}
