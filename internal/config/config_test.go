package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, time.Second, cfg.Server.SlowRequest)
	assert.Equal(t, 1, cfg.Subject.PersonID)
	assert.Equal(t, "黄宾虹", cfg.Subject.Name)
	assert.Equal(t, 1865, cfg.Subject.BirthYear)
	assert.Equal(t, 1955, cfg.Subject.DeathYear)
	assert.Equal(t, 1000, cfg.Pagination.MaxPageSize)
	assert.Equal(t, []string{"*"}, cfg.Server.CORS.AllowedOrigins)
}

func TestLoadFile_YAMLThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  addr: ":9000"
  slow_request: 2s
database:
  path: /tmp/from-yaml.db
resource:
  storage_type: oss
  oss_base_url: https://bucket.example.com
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	t.Setenv("HBH_DATABASE__PATH", "/tmp/from-env.db")
	t.Setenv("HBH_SERVER__RATE_LIMIT__BURST", "7")
	t.Setenv("HBH_SERVER__CORS__ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Server.SlowRequest)
	assert.Equal(t, "/tmp/from-env.db", cfg.Database.Path)
	assert.Equal(t, 7, cfg.Server.RateLimit.Burst)
	assert.Equal(t, "oss", cfg.Resource.StorageType)
	assert.Equal(t, "https://bucket.example.com", cfg.Resource.OSSBaseURL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.CORS.AllowedOrigins)
}

func TestLoadFile_LegacyEnv(t *testing.T) {
	t.Setenv("PORT", ":7070")
	t.Setenv("DB_PATH", "/tmp/legacy.db")

	cfg, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "/tmp/legacy.db", cfg.Database.Path)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Server.Mode = "prod"
	cfg.Resource.StorageType = "s3"
	cfg.Pagination.MaxPageSize = 0
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "server.mode")
	assert.Contains(t, err.Error(), "resource.storage_type")
	assert.Contains(t, err.Error(), "pagination.max_page_size")
}

func TestLoadFile_InvalidEnv(t *testing.T) {
	t.Setenv("HBH_SUBJECT__PERSON_ID", "0")
	_, err := LoadFile("")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadFile_LatencyBuckets(t *testing.T) {
	cfg, err := LoadFile("")
	require.NoError(t, err)
	assert.Len(t, cfg.Metrics.LatencyBuckets, 10)

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
metrics:
  latency_buckets: [0.1, 0.5, 2]
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err = LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.5, 2}, cfg.Metrics.LatencyBuckets)

	cfg.Metrics.LatencyBuckets = []float64{1, 0.5}
	err = cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "metrics.latency_buckets")
}
