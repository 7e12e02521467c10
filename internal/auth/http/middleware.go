// Package http provides the HTTP middleware guarding the hook endpoints.
package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authService "github.com/allisson/sealedfields/internal/auth/service"
	apperrors "github.com/allisson/sealedfields/internal/errors"
	"github.com/allisson/sealedfields/internal/httputil"
)

// HookTokenHeader carries the shared hook token when Authorization is not used.
const HookTokenHeader = "X-Hook-Token"

// HookAuthMiddleware validates the shared token sent by the host platform.
//
// The token is read from "Authorization: Bearer <token>" or, failing that, from
// the X-Hook-Token header, and compared against tokenHash. An empty tokenHash
// rejects every call.
//
// Returns:
//   - 401 Unauthorized: missing, malformed or wrong token
//   - Continues: token matches
func HookAuthMiddleware(
	tokenService authService.HookTokenService,
	tokenHash string,
	logger *slog.Logger,
) gin.HandlerFunc {
	if tokenHash == "" {
		logger.Warn("HOOK_TOKEN_HASH is not set, hook endpoints will reject every request")
	}

	return func(c *gin.Context) {
		plainToken, ok := extractHookToken(c)
		if !ok {
			logger.Debug("hook authentication failed: missing token")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		if !tokenService.CompareToken(plainToken, tokenHash) {
			logger.Debug("hook authentication failed: token mismatch",
				slog.String("client_ip", c.ClientIP()))
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}

func extractHookToken(c *gin.Context) (string, bool) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return "", false
		}
		token := strings.TrimSpace(authHeader[len(bearerPrefix):])
		return token, token != ""
	}

	token := strings.TrimSpace(c.GetHeader(HookTokenHeader))
	return token, token != ""
}
