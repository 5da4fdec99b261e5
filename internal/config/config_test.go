package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "HTTP_HOST", "HTTP_PORT", "OCR_API_URL", "OCR_TIMEOUT", "MAX_IMAGE_BYTES", "DB_DSN", "DEVICE_API_KEY"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "https://api.ocr.space/parse/image", cfg.OCR.URL)
	assert.Equal(t, 30*time.Second, cfg.OCR.Timeout)
	assert.Equal(t, int64(10<<20), cfg.Device.MaxImageBytes)
	assert.Empty(t, cfg.DB.DSN)
}

func TestLoadReadsRequestTimeValuesLazily(t *testing.T) {
	t.Setenv("OCR_API_KEY", "")
	t.Setenv("ALLOWED_PLATES", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.OCRAPIKey())

	t.Setenv("OCR_API_KEY", "secret")
	t.Setenv("ALLOWED_PLATES", "AB12CD,XY99ZZ")

	assert.Equal(t, "secret", cfg.OCRAPIKey())
	assert.Equal(t, "AB12CD,XY99ZZ", cfg.AllowedPlates())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("OCR_TIMEOUT", "5s")
	t.Setenv("OCR_API_URL", "http://ocr.local/parse")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.OCR.Timeout)
	assert.Equal(t, "http://ocr.local/parse", cfg.OCR.URL)
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "70000")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_PORT")
}
