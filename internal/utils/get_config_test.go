package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigFrom_File(t *testing.T) {
	path := writeConfig(t, `
APP_PORT: "8081"
STORE_DRIVER: sqlite
STORE_PATH: pantry.db
TIMEZONE: Asia/Jakarta
EXPIRY_WINDOW_DAYS: 5
NODE_ID: 2
`)
	LoadConfigFrom(path)

	assert.Equal(t, "8081", GetConfig("APP_PORT"))
	assert.Equal(t, "sqlite", GetConfig("STORE_DRIVER"))
	assert.Equal(t, "pantry.db", GetConfig("STORE_PATH"))
	assert.Equal(t, "Asia/Jakarta", GetConfig("TIMEZONE"))
	assert.Equal(t, "5", GetConfig("EXPIRY_WINDOW_DAYS"))
	assert.Equal(t, "2", GetConfig("NODE_ID"))
	assert.Equal(t, DefaultLogFile, GetConfig("LOG_FILE"))
}

func TestLoadConfigFrom_MissingFileUsesDefaults(t *testing.T) {
	LoadConfigFrom(filepath.Join(t.TempDir(), "absent.yaml"))

	cfg := GetAppConfig()
	assert.Equal(t, DefaultAppPort, cfg.AppPort)
	assert.Equal(t, DefaultStoreDriver, cfg.StoreDriver)
	assert.Equal(t, DefaultStorePath, cfg.StorePath)
	assert.Equal(t, DefaultTimezone, cfg.Timezone)
	assert.Equal(t, DefaultExpiryWindow, cfg.ExpiryWindowDays)
	assert.Equal(t, DefaultRateLimitMax, cfg.RateLimitMax)
}

func TestLoadConfigFrom_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "STORE_DRIVER: file\nEXPIRY_WINDOW_DAYS: 3\n")
	t.Setenv("STORE_DRIVER", "s3")
	t.Setenv("EXPIRY_WINDOW_DAYS", "7")
	t.Setenv("AWS_S3_BUCKET", "pantry")

	LoadConfigFrom(path)

	assert.Equal(t, "s3", GetConfig("STORE_DRIVER"))
	assert.Equal(t, "7", GetConfig("EXPIRY_WINDOW_DAYS"))
	assert.Equal(t, "pantry", GetConfig("AWS_S3_BUCKET"))
}

func TestGetConfig_UnknownKey(t *testing.T) {
	LoadConfigFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Equal(t, "", GetConfig("NOPE"))
}
