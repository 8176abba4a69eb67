package middleware

import (
	"crypto/subtle"
	"net/http"

	"field-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Requester resolves the requesting party from the X-User-ID header and puts
// it on the request context. Authentication itself lives in front of this
// service; here the identity is taken as given.
func Requester(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("X-User-ID")
			if raw == "" {
				utils.ResponseUnauthorized(w, "Missing X-User-ID header")
				return
			}

			userID, err := uuid.Parse(raw)
			if err != nil {
				logger.Warn("Invalid requester ID",
					zap.String("x_user_id", raw),
					zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid X-User-ID header")
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Operator guards operator-only routes with a shared API key from config.
func Operator(apiKey string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				logger.Error("Operator API key not configured",
					zap.String("path", r.URL.Path))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			provided := r.Header.Get("X-Operator-Key")
			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				logger.Warn("Operator access denied",
					zap.String("path", r.URL.Path),
					zap.String("ip", r.RemoteAddr))
				utils.ResponseForbidden(w, "Operator access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
