package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"SERVER_PORT", "BACKEND_BASE_URL", "BACKEND_TIMEOUT", "SESSION_SECRET",
		"COOKIE_SECURE", "CSRF_KEY", "PAGE_SIZE", "MAX_UPLOAD_BYTES", "LOG_LEVEL", "GIN_MODE",
	} {
		t.Setenv(k, "")
	}
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DefaultBackendBaseURL, cfg.BackendBaseURL)
	assert.Equal(t, 30*time.Second, cfg.BackendTimeout)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_RequiresSessionSecret(t *testing.T) {
	clearEnv(t)

	_, err := Load("")
	assert.ErrorIs(t, err, ErrMissingSessionSecret)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_SECRET", "secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("BACKEND_BASE_URL", "https://api.example.com/")
	t.Setenv("BACKEND_TIMEOUT", "5s")
	t.Setenv("PAGE_SIZE", "25")
	t.Setenv("COOKIE_SECURE", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "https://api.example.com", cfg.BackendBaseURL, "trailing slash is trimmed")
	assert.Equal(t, 5*time.Second, cfg.BackendTimeout)
	assert.Equal(t, 25, cfg.PageSize)
	assert.True(t, cfg.CookieSecure)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "port: \"7000\"\nbackend_base_url: http://backend:4000\nbackend_timeout: 12s\nsession_secret: from-file\npage_size: 5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("PAGE_SIZE", "20")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, "http://backend:4000", cfg.BackendBaseURL)
	assert.Equal(t, 12*time.Second, cfg.BackendTimeout)
	assert.Equal(t, "from-file", cfg.SessionSecret)
	assert.Equal(t, 20, cfg.PageSize, "env wins over file")
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidEnvValues(t *testing.T) {
	cases := map[string]string{
		"BACKEND_TIMEOUT":  "soon",
		"PAGE_SIZE":        "ten",
		"COOKIE_SECURE":    "maybe",
		"MAX_UPLOAD_BYTES": "big",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("SESSION_SECRET", "secret")
			t.Setenv(key, val)

			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := Defaults()
		cfg.SessionSecret = "secret"
		return cfg
	}

	assert.NoError(t, valid().Validate())

	cfg := valid()
	cfg.BackendBaseURL = "not a url"
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.PageSize = 0
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.BackendTimeout = 0
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.CSRFKey = "short"
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.CSRFKey = "0123456789abcdef0123456789abcdef"
	assert.NoError(t, cfg.Validate())

	cfg = valid()
	cfg.GinMode = "production"
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.GinMode = "release"
	assert.NoError(t, cfg.Validate())
}
