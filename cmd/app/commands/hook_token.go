package commands

import (
	"fmt"
	"io"
	"log/slog"

	authService "github.com/allisson/sealedfields/internal/auth/service"
)

// RunCreateHookToken generates a hook token and its Argon2id hash.
//
// The plain token goes to the host platform's hook configuration and the hash to
// HOOK_TOKEN_HASH. The token is shown once and is not recoverable from the hash.
func RunCreateHookToken(
	tokenService authService.HookTokenService,
	logger *slog.Logger,
	writer io.Writer,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	plain, hash, err := tokenService.GenerateToken()
	if err != nil {
		return fmt.Errorf("failed to generate hook token: %w", err)
	}

	if format == "json" {
		if err := writeJSON(writer, map[string]string{
			"token":      plain,
			"token_hash": hash,
		}); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintln(writer, "# Hook token")
		_, _ = fmt.Fprintln(writer, "# Configure the host platform to send this token in the X-Hook-Token header.")
		_, _ = fmt.Fprintln(writer, "# It is shown only once.")
		_, _ = fmt.Fprintf(writer, "HOOK_TOKEN=\"%s\"\n", plain)
		_, _ = fmt.Fprintln(writer)
		_, _ = fmt.Fprintln(writer, "# Copy this environment variable to the service configuration")
		_, _ = fmt.Fprintf(writer, "HOOK_TOKEN_HASH='%s'\n", hash)
	}

	logger.Info("hook token created")
	return nil
}
