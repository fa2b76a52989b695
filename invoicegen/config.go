package invoicegen

import (
	"io/fs"
	"os"
	"time"

	"github.com/alapierre/go-invoicegen-client/invoicegen/util"
	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	DefaultBaseURL    = "https://api.apiverve.com/v1/invoicegenerator"
	DefaultTimeout    = 30 * time.Second
	DefaultRetryCount = 2
)

// Config holds the connection settings of Client.
type Config struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
}

// LoadConfig reads settings from the environment. The given .env files (or
// ".env" when none are given) are loaded first; a missing file is not an
// error and variables already present in the environment win.
//
//	INVOICEGEN_API_KEY      API key sent as x-api-key
//	INVOICEGEN_BASE_URL     endpoint, DefaultBaseURL when empty
//	INVOICEGEN_TIMEOUT      request timeout, e.g. "15s"
//	INVOICEGEN_RETRY_COUNT  retries on 429 and 5xx
func LoadConfig(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, errors.Wrap(err, "load .env")
	}

	timeout, err := util.EnvDuration("INVOICEGEN_TIMEOUT", DefaultTimeout)
	if err != nil {
		return Config{}, err
	}
	retries, err := util.EnvInt("INVOICEGEN_RETRY_COUNT", DefaultRetryCount)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		APIKey:     os.Getenv("INVOICEGEN_API_KEY"),
		BaseURL:    util.EnvOr("INVOICEGEN_BASE_URL", DefaultBaseURL),
		Timeout:    timeout,
		RetryCount: retries,
	}
	logger.WithFields(logrus.Fields{
		"base_url": cfg.BaseURL,
		"timeout":  cfg.Timeout,
		"retries":  cfg.RetryCount,
		"api_key":  cfg.APIKey != "",
	}).Debug("configuration loaded")

	return cfg, nil
}
