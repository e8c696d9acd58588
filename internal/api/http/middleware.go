package http

import (
	"net/http"
	"strings"
	"time"

	"raitha-mithra-backend/internal/domain"
	"raitha-mithra-backend/internal/logger"
	"raitha-mithra-backend/internal/security"
)

// AuthMiddleware verifies the bearer token and attaches the caller identity to
// the request context.
func AuthMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeJSON(w, http.StatusUnauthorized, errorBody{Error: errorDetail{
					Kind:    "unauthorized",
					Message: "authorization header is required",
				}})
				return
			}

			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				writeJSON(w, http.StatusUnauthorized, errorBody{Error: errorDetail{
					Kind:    "unauthorized",
					Message: "authorization header must use the Bearer scheme",
				}})
				return
			}

			identity, err := tokens.Validate(tokenString)
			if err != nil {
				message := "invalid token"
				if err == security.ErrExpiredToken {
					message = "token has expired"
				}
				writeJSON(w, http.StatusUnauthorized, errorBody{Error: errorDetail{
					Kind:    "unauthorized",
					Message: message,
				}})
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// LoggingMiddleware logs every request with method, path, status and duration.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// mustIdentity pulls the identity set by AuthMiddleware. Handlers behind the
// auth chain can rely on it being present.
func mustIdentity(w http.ResponseWriter, r *http.Request) (domain.Identity, bool) {
	id, ok := IdentityFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: errorDetail{
			Kind:    "unauthorized",
			Message: "authentication required",
		}})
		return domain.Identity{}, false
	}
	return id, true
}
