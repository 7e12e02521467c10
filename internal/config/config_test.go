package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:    "load default configuration",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "0.0.0.0", cfg.ServerHost)
				assert.Equal(t, 8080, cfg.ServerPort)
				assert.Equal(t, "postgres", cfg.DBDriver)
				assert.Equal(t, 25, cfg.DBMaxOpenConnections)
				assert.Equal(t, 5*time.Minute, cfg.DBConnMaxLifetime)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, "aes-gcm", cfg.EncryptionAlgorithm)
				assert.Equal(t, "@ENCRYPTED", cfg.EncryptionTag)
				assert.Equal(t, "[encrypted]", cfg.MaskToken)
				assert.True(t, cfg.WorkerEnabled)
				assert.Equal(t, 30*time.Second, cfg.WorkerInterval)
				assert.Equal(t, 200, cfg.WorkerBatchSize)
				assert.Equal(t, 5*time.Minute, cfg.WorkerClaimTTL)
				assert.Equal(t, 15*time.Second, cfg.MailRelayTimeout)
				assert.Empty(t, cfg.HookTokenHash)
				assert.Equal(t, "sealedfields", cfg.MetricsNamespace)
			},
		},
		{
			name: "load custom database configuration",
			envVars: map[string]string{
				"DB_DRIVER":               "mysql",
				"DB_CONNECTION_STRING":    "user:password@tcp(localhost:3306)/testdb",
				"DB_MAX_OPEN_CONNECTIONS": "50",
				"DB_CONN_MAX_LIFETIME":    "10",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "mysql", cfg.DBDriver)
				assert.Equal(t, "user:password@tcp(localhost:3306)/testdb", cfg.DBConnectionString)
				assert.Equal(t, 50, cfg.DBMaxOpenConnections)
				assert.Equal(t, 10*time.Minute, cfg.DBConnMaxLifetime)
			},
		},
		{
			name: "load custom worker configuration",
			envVars: map[string]string{
				"WORKER_ENABLED":           "false",
				"WORKER_INTERVAL_SECONDS":  "5",
				"WORKER_BATCH_SIZE":        "50",
				"WORKER_CLAIM_TTL_SECONDS": "60",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.WorkerEnabled)
				assert.Equal(t, 5*time.Second, cfg.WorkerInterval)
				assert.Equal(t, 50, cfg.WorkerBatchSize)
				assert.Equal(t, time.Minute, cfg.WorkerClaimTTL)
			},
		},
		{
			name: "load custom encryption configuration",
			envVars: map[string]string{
				"ENCRYPTION_ALGORITHM": "chacha20-poly1305",
				"ENCRYPTION_TAG":       "@SEALED",
				"KMS_KEY_URI":          "base64key://abc",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "chacha20-poly1305", cfg.EncryptionAlgorithm)
				assert.Equal(t, "@SEALED", cfg.EncryptionTag)
				assert.Equal(t, "base64key://abc", cfg.KMSKeyURI)
			},
		},
		{
			name: "load custom log level",
			envVars: map[string]string{
				"LOG_LEVEL": "debug",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, "debug", cfg.GetGinMode())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()

			for key, value := range tt.envVars {
				err := os.Setenv(key, value)
				require.NoError(t, err)
			}

			cfg := Load()

			tt.validate(t, cfg)
		})
	}
}

func TestGetGinMode(t *testing.T) {
	for _, level := range []string{"info", "warn", "error", ""} {
		cfg := &Config{LogLevel: level}
		assert.Equal(t, "release", cfg.GetGinMode(), level)
	}
}
