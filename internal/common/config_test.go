package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"SCANVAULT_DB_DRIVER", "SCANVAULT_DB_URL", "SCANVAULT_HTTP_ADDR",
		"SCANVAULT_ES_ADDRESSES", "SCANVAULT_LEASE_TTL", "SCANVAULT_QUEUE_NAME",
		"SCANVAULT_MAX_EXTRACTION_ATTEMPTS", "SCANVAULT_MAX_UPLOAD_BYTES",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddr)
	assert.Equal(t, "scanvault.process", cfg.Queue.QueueName)
	assert.Equal(t, []string{"http://localhost:9200"}, cfg.Index.Addresses)
	assert.Equal(t, 10*time.Minute, cfg.Redis.LeaseTTL)
	assert.Equal(t, 3, cfg.Processing.MaxExtractionAttempts)
	assert.Equal(t, 300, cfg.Processing.RenderDPI)
	assert.Equal(t, 0, cfg.Processing.MaxPDFPages)
	assert.Equal(t, int64(50<<20), cfg.Upload.MaxBytes)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SCANVAULT_ES_ADDRESSES", " http://es1:9200, http://es2:9200 ,")
	t.Setenv("SCANVAULT_LEASE_TTL", "90s")
	t.Setenv("SCANVAULT_MAX_EXTRACTION_ATTEMPTS", "5")
	t.Setenv("SCANVAULT_WORKER_COUNT", "lots") // unparseable, keeps the default

	cfg := LoadConfig()

	assert.Equal(t, []string{"http://es1:9200", "http://es2:9200"}, cfg.Index.Addresses)
	assert.Equal(t, 90*time.Second, cfg.Redis.LeaseTTL)
	assert.Equal(t, 5, cfg.Processing.MaxExtractionAttempts)
	assert.Equal(t, 4, cfg.Processing.WorkerCount)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Database:   DatabaseConfig{Driver: "postgres", DSN: "postgres://localhost/scanvault"},
			Server:     ServerConfig{HTTPAddr: ":8080"},
			Processing: ProcessingConfig{MaxExtractionAttempts: 3, FaceMinConfidence: 0.5},
		}
	}
	require.NoError(t, base().Validate())

	c := base()
	c.Database.DSN = ""
	assert.Error(t, c.Validate())

	c = base()
	c.Database.Driver = "sqlite"
	c.Database.DSN = ""
	assert.NoError(t, c.Validate())

	c = base()
	c.Database.Driver = "oracle"
	assert.Error(t, c.Validate())

	c = base()
	c.Processing.MaxExtractionAttempts = 0
	assert.Error(t, c.Validate())

	c = base()
	c.Processing.FaceMinConfidence = 1.5
	assert.Error(t, c.Validate())
}
