package invoicegen

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"INVOICEGEN_API_KEY", "INVOICEGEN_BASE_URL", "INVOICEGEN_TIMEOUT", "INVOICEGEN_RETRY_COUNT"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, Config{
		BaseURL:    DefaultBaseURL,
		Timeout:    DefaultTimeout,
		RetryCount: DefaultRetryCount,
	}, cfg)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("INVOICEGEN_API_KEY", "from-env")
	t.Setenv("INVOICEGEN_TIMEOUT", "5s")
	t.Setenv("INVOICEGEN_RETRY_COUNT", "0")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.APIKey)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 0, cfg.RetryCount)
}

func TestLoadConfig_DotEnvDoesNotOverrideEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("INVOICEGEN_API_KEY", "from-env")

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(
		"INVOICEGEN_API_KEY=from-file\nINVOICEGEN_BASE_URL=http://localhost:9999/gen\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.APIKey)
	assert.Equal(t, "http://localhost:9999/gen", cfg.BaseURL)
}

func TestLoadConfig_InvalidTimeout(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("INVOICEGEN_TIMEOUT", "soon")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
