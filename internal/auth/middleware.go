// Package auth provides the request authentication middleware.
package auth

import (
	"net/http"
	"strings"

	"github.com/insideimaging/insideimaging-backend/internal/auth/jwt"
	apperrors "github.com/insideimaging/insideimaging-backend/pkg/errors"
	"github.com/insideimaging/insideimaging-backend/pkg/httputil"
)

// RequireAuth validates the Bearer token and puts the user identity on the
// request context.
func RequireAuth(manager *jwt.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				httputil.Error(w, apperrors.Unauthorized("missing authorization header"))
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				httputil.Error(w, apperrors.Unauthorized("authorization header must be a Bearer token"))
				return
			}

			claims, err := manager.Validate(token)
			if err != nil {
				httputil.Error(w, err)
				return
			}

			ctx := httputil.WithUserContext(r.Context(), claims.UserID, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
