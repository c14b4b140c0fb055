package middleware

import (
	"net/http"

	"velora-be/internal/auth"
	"velora-be/internal/logger"

	"go.uber.org/zap"
)

// AdminAuthMiddleware guards the order-archive endpoints: only requests
// carrying a valid admin session token pass.
func AdminAuthMiddleware(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := auth.ExtractAccessToken(r)
			if token == "" {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			claims, err := auth.ParseToken(jwtSecret, token)
			if err != nil || claims.Role != "admin" {
				logger.FromCtx(r.Context()).Warn("rejected admin token", zap.Error(err))
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
