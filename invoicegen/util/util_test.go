package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDebugEnabled_False(t *testing.T) {
	t.Setenv("INVOICEGEN_DEBUG", "")
	res := DebugEnabled()
	assert.False(t, res, "debug should be false")
}

func TestIsDebugEnabled_True(t *testing.T) {
	t.Setenv("INVOICEGEN_DEBUG", "true")
	res := DebugEnabled()
	assert.True(t, res, "debug should be true")
}

func TestHttpTraceEnabled_Garbage(t *testing.T) {
	t.Setenv("INVOICEGEN_HTTP_TRACE", "sure")
	assert.False(t, HttpTraceEnabled())
}

func TestEnvOr(t *testing.T) {
	t.Setenv("INVOICEGEN_TEST_VALUE", "")
	assert.Equal(t, "fallback", EnvOr("INVOICEGEN_TEST_VALUE", "fallback"))

	t.Setenv("INVOICEGEN_TEST_VALUE", "set")
	assert.Equal(t, "set", EnvOr("INVOICEGEN_TEST_VALUE", "fallback"))
}

func TestEnvInt(t *testing.T) {
	t.Setenv("INVOICEGEN_TEST_INT", "")
	v, err := EnvInt("INVOICEGEN_TEST_INT", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	t.Setenv("INVOICEGEN_TEST_INT", "7")
	v, err = EnvInt("INVOICEGEN_TEST_INT", 3)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	t.Setenv("INVOICEGEN_TEST_INT", "seven")
	_, err = EnvInt("INVOICEGEN_TEST_INT", 3)
	assert.Error(t, err)
}

func TestEnvDuration(t *testing.T) {
	t.Setenv("INVOICEGEN_TEST_DURATION", "15s")
	d, err := EnvDuration("INVOICEGEN_TEST_DURATION", time.Second)
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, d)

	t.Setenv("INVOICEGEN_TEST_DURATION", "15")
	_, err = EnvDuration("INVOICEGEN_TEST_DURATION", time.Second)
	assert.Error(t, err)
}
