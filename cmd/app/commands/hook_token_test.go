package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	authService "github.com/allisson/sealedfields/internal/auth/service"
)

func TestRunCreateHookToken(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokenService := authService.NewHookTokenService()

	t.Run("json-output", func(t *testing.T) {
		var out bytes.Buffer
		err := RunCreateHookToken(tokenService, logger, &out, "json")
		require.NoError(t, err)

		var result map[string]string
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		require.NotEmpty(t, result["token"])
		require.NotEmpty(t, result["token_hash"])
		require.True(t, tokenService.CompareToken(result["token"], result["token_hash"]))
	})

	t.Run("text-output", func(t *testing.T) {
		var out bytes.Buffer
		err := RunCreateHookToken(tokenService, logger, &out, "text")
		require.NoError(t, err)
		require.Contains(t, out.String(), "HOOK_TOKEN=\"")
		require.Contains(t, out.String(), "HOOK_TOKEN_HASH='")
	})

	t.Run("invalid-format", func(t *testing.T) {
		err := RunCreateHookToken(tokenService, logger, &bytes.Buffer{}, "xml")
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid format")
	})
}
