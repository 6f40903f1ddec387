package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "release", cfg.Mode)
	assert.Equal(t, ":memory:", cfg.VisitsDSN)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdle)
	assert.Equal(t, 10000, cfg.SessionMax)
	assert.Equal(t, 24*time.Hour, cfg.VisitsRetention)
	assert.False(t, cfg.AdminStats)
	assert.False(t, cfg.Mail.Enabled())
	assert.Empty(t, cfg.CORSOrigins)
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "9000")
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_USER", "site@example.com")
	t.Setenv("SMTP_PASS", "secret")
	t.Setenv("TO_EMAIL", "me@example.com")
	t.Setenv("ADMIN_STATS", "true")
	t.Setenv("SESSION_IDLE", "5m")
	t.Setenv("SESSION_MAX", "50")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.1")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "debug", cfg.Mode)
	assert.True(t, cfg.AdminStats)
	assert.Equal(t, 5*time.Minute, cfg.SessionIdle)
	assert.Equal(t, 50, cfg.SessionMax)
	assert.Equal(t, []string{"10.0.0.1"}, cfg.TrustedProxies)
	assert.True(t, cfg.Mail.Enabled())
	assert.Equal(t, "587", cfg.Mail.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"7070\"\nlog:\n  level: debug\n  pretty: false\nvisits:\n  retention: 2h\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.LogPretty)
	assert.Equal(t, 2*time.Hour, cfg.VisitsRetention)

	t.Setenv("PORT", "7171")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "7171", cfg.Port, "environment wins over file")
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "an explicit file must exist")

	chdir(t, t.TempDir())
	t.Setenv("GIN_MODE", "production")
	_, err = Load("")
	assert.ErrorContains(t, err, "gin_mode")
}

func TestLoadRejectsUncappedSessions(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SESSION_MAX", "0")
	_, err := Load("")
	assert.ErrorContains(t, err, "session.max")
}
