// Package handler exposes signup and login over HTTP.
package handler

import (
	"net/http"

	"github.com/insideimaging/insideimaging-backend/internal/auth/service"
	"github.com/insideimaging/insideimaging-backend/pkg/httputil"
	"github.com/insideimaging/insideimaging-backend/pkg/logger"
)

// Handler handles HTTP requests for authentication
type Handler struct {
	service *service.AuthService
	log     *logger.Logger
}

// NewHandler creates a new auth handler
func NewHandler(svc *service.AuthService, log *logger.Logger) *Handler {
	return &Handler{
		service: svc,
		log:     log,
	}
}

// Signup handles POST /auth/signup
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req service.SignupRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}
	if err := httputil.Validate(req); err != nil {
		httputil.Error(w, err)
		return
	}

	resp, err := h.service.Signup(r.Context(), &req)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.Created(w, resp)
}

// Login handles POST /auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}
	if err := httputil.Validate(req); err != nil {
		httputil.Error(w, err)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, resp)
}
