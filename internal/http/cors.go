package http

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authHTTP "github.com/allisson/sealedfields/internal/auth/http"
)

// createCORSMiddleware returns nil unless CORS_ENABLED is set and at least one
// origin is configured. The host platform calls the API server to server, so
// CORS only matters when a browser fetches the masked read surfaces directly.
//
// allowOriginsStr is a comma-separated list; a lone "*" allows every origin.
// Credentials are never allowed: the hook token travels in a header, not a cookie.
func createCORSMiddleware(enabled bool, allowOriginsStr string, logger *slog.Logger) gin.HandlerFunc {
	if !enabled {
		return nil
	}

	origins := parseOrigins(allowOriginsStr)
	if len(origins) == 0 {
		logger.Warn("CORS enabled but no origins configured - CORS will not be applied")
		return nil
	}

	config := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{
			"Authorization",
			"Content-Type",
			authHTTP.HookTokenHeader,
		},
		ExposeHeaders: []string{"X-Request-Id", "Retry-After"},
		MaxAge:        12 * time.Hour,
	}

	if slices.Contains(origins, "*") {
		logger.Warn("CORS allows every origin")
		config.AllowAllOrigins = true
	} else {
		logger.Info("CORS enabled", slog.Any("origins", origins))
		config.AllowOrigins = origins
	}

	return cors.New(config)
}

// parseOrigins splits a comma-separated origin list, trimming whitespace and
// trailing slashes and dropping duplicates.
func parseOrigins(originsStr string) []string {
	if strings.TrimSpace(originsStr) == "" {
		return nil
	}

	origins := make([]string, 0)
	for _, part := range strings.Split(originsStr, ",") {
		origin := strings.TrimRight(strings.TrimSpace(part), "/")
		if origin == "" || slices.Contains(origins, origin) {
			continue
		}
		origins = append(origins, origin)
	}
	return origins
}
