package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

const (
	keyOCRAPIKey     = "OCR_API_KEY"
	keyAllowedPlates = "ALLOWED_PLATES"

	defaultOCRURL        = "https://api.ocr.space/parse/image"
	defaultOCRTimeout    = 30 * time.Second
	defaultMaxImageBytes = 10 << 20
)

type HTTPConfig struct {
	Host string
	Port int
}

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type OCRConfig struct {
	URL     string
	Timeout time.Duration
}

type DeviceConfig struct {
	APIKey        string
	MaxImageBytes int64
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	OCR         OCRConfig
	Device      DeviceConfig

	v *viper.Viper
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")

	v.AutomaticEnv()

	_ = v.ReadInConfig()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		},
		OCR: OCRConfig{
			URL:     v.GetString("OCR_API_URL"),
			Timeout: v.GetDuration("OCR_TIMEOUT"),
		},
		Device: DeviceConfig{
			APIKey:        v.GetString("DEVICE_API_KEY"),
			MaxImageBytes: v.GetInt64("MAX_IMAGE_BYTES"),
		},
		v: v,
	}

	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8080
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.OCR.URL == "" {
		cfg.OCR.URL = defaultOCRURL
	}
	if cfg.OCR.Timeout == 0 {
		cfg.OCR.Timeout = defaultOCRTimeout
	}
	if cfg.Device.MaxImageBytes == 0 {
		cfg.Device.MaxImageBytes = defaultMaxImageBytes
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// OCRAPIKey and AllowedPlates are looked up on every call so a missing key
// is reported per request instead of at startup.
func (c *Config) OCRAPIKey() string {
	return c.v.GetString(keyOCRAPIKey)
}

func (c *Config) AllowedPlates() string {
	return c.v.GetString(keyAllowedPlates)
}

func validate(cfg *Config) error {
	if cfg.HTTP.Port < 1 || cfg.HTTP.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if cfg.OCR.Timeout < 0 {
		return fmt.Errorf("OCR_TIMEOUT must not be negative")
	}
	if cfg.Device.MaxImageBytes < 0 {
		return fmt.Errorf("MAX_IMAGE_BYTES must not be negative")
	}
	if _, err := url.ParseRequestURI(cfg.OCR.URL); err != nil {
		return fmt.Errorf("OCR_API_URL is invalid: %w", err)
	}
	return nil
}
