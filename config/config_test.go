package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, SourceFiles, cfg.DataSource)
	assert.Equal(t, "plain", cfg.Variant)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Len(t, cfg.AllowedOrigins, 2)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DASHBOARD_VARIANT", "legislators")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example,https://c.example")
	t.Setenv("STRICT_DATASETS", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "legislators", cfg.Variant)
	assert.Equal(t, []string{"https://a.example", "https://b.example", "https://c.example"}, cfg.AllowedOrigins)
	assert.True(t, cfg.StrictDatasets)
}

func TestLoadRejectsPostgresWithoutURL(t *testing.T) {
	t.Setenv("DATA_SOURCE", "postgres")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadRejectsUnknownSource(t *testing.T) {
	t.Setenv("DATA_SOURCE", "s3")
	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestLoadEnvFileKeepsExistingValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	content := "# comment\nDASHBOARD_TEST_A=from-file\nDASHBOARD_TEST_B=\"quoted\"\nbroken line\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("DASHBOARD_TEST_A", "from-env")
	t.Setenv("DASHBOARD_TEST_B", "")
	os.Unsetenv("DASHBOARD_TEST_B")

	require.NoError(t, loadEnvFile(path))
	assert.Equal(t, "from-env", os.Getenv("DASHBOARD_TEST_A"))
	assert.Equal(t, "quoted", os.Getenv("DASHBOARD_TEST_B"))
}

func TestGetCacheKey(t *testing.T) {
	assert.Equal(t, "session:abc:1", GetCacheKey("session", "abc", 1))
	assert.Equal(t, "session", GetCacheKey("session"))
}

func TestNewSessionCache(t *testing.T) {
	c := NewSessionCache(time.Minute)
	c.SetDefault("k", 1)
	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}
