package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"listen_addr": ":9090",
		"store_backend": "redis",
		"redis_url": "redis://localhost:6379/0",
		"database_url": "postgres://localhost/hirelogic",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, StoreRedis, cfg.StoreBackend)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, "postgres://localhost/hirelogic", cfg.DatabaseURL)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	_, err = LoadConfig(tmpFile)
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "empty config", cfg: Config{}, wantErr: false},
		{name: "memory backend", cfg: Config{StoreBackend: StoreMemory}, wantErr: false},
		{name: "file backend", cfg: Config{StoreBackend: StoreFile}, wantErr: false},
		{name: "redis backend with url", cfg: Config{StoreBackend: StoreRedis, RedisURL: "redis://localhost:6379"}, wantErr: false},
		{name: "redis backend without url", cfg: Config{StoreBackend: StoreRedis}, wantErr: true},
		{name: "unknown backend", cfg: Config{StoreBackend: "etcd"}, wantErr: true},
		{name: "negative mock seed", cfg: Config{MockSeed: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{ListenAddr: ":9090"}
	defaults := Config{
		ListenAddr:   ":8080",
		StoreBackend: StoreFile,
		DatabaseURL:  "postgres://localhost/hirelogic",
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, ":9090", merged.ListenAddr, "explicit value should win")
	assert.Equal(t, StoreFile, merged.StoreBackend)
	assert.Equal(t, "postgres://localhost/hirelogic", merged.DatabaseURL)
	assert.Equal(t, "hirelogic_state.json", merged.StateFile, "file backend should get a default path")
}

func TestMergeWithDefaults_Fallbacks(t *testing.T) {
	cfg := Config{}
	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, ":8080", merged.ListenAddr)
	assert.Equal(t, StoreMemory, merged.StoreBackend)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":7070")
	t.Setenv("STORE_BACKEND", "file")
	t.Setenv("STATE_FILE", "/tmp/state.json")
	t.Setenv("VERIFY_ENDPOINT", "https://verify.example.com/check")
	t.Setenv("MOCK_SEED", "42")
	t.Setenv("VERBOSE", "true")

	cfg := FromEnv()
	assert.Equal(t, ":7070", cfg.ListenAddr)
	assert.Equal(t, StoreFile, cfg.StoreBackend)
	assert.Equal(t, "/tmp/state.json", cfg.StateFile)
	assert.Equal(t, "https://verify.example.com/check", cfg.VerifyEndpoint)
	assert.Equal(t, int64(42), cfg.MockSeed)
	assert.True(t, cfg.Verbose)
}

func TestFromEnv_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("MOCK_SEED", "not-a-number")
	t.Setenv("VERBOSE", "maybe")

	cfg := FromEnv()
	assert.Equal(t, int64(0), cfg.MockSeed)
	assert.False(t, cfg.Verbose)
}
