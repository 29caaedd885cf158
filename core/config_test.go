package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "designandcart", cfg.Name)
	assert.Equal(t, "inmemory", cfg.Storage.Provider)
	assert.True(t, cfg.Demo.Seed)
	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.False(t, cfg.Telemetry.Enabled)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("DC_SERVICE_NAME", "dc-test")
	t.Setenv("DC_STORAGE_PROVIDER", "file")
	t.Setenv("DC_STORAGE_DIR", "/tmp/dc-test")
	t.Setenv("DC_DEMO_SEED", "false")
	t.Setenv("DC_LOG_LEVEL", "DEBUG")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "dc-test", cfg.Name)
	assert.Equal(t, "file", cfg.Storage.Provider)
	assert.Equal(t, "/tmp/dc-test", cfg.Storage.Dir)
	assert.False(t, cfg.Demo.Seed)
	assert.Equal(t, "DEBUG", cfg.Logging.Level)
}

func TestNewConfig_RedisURLImpliesProvider(t *testing.T) {
	t.Setenv("REDIS_URL", "redis://localhost:6379")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Storage.Provider)
	assert.Equal(t, "redis://localhost:6379", cfg.Storage.RedisURL)
}

func TestNewConfig_OptionsWinOverEnvironment(t *testing.T) {
	t.Setenv("DC_SERVICE_NAME", "from-env")

	cfg, err := NewConfig(
		WithName("from-option"),
		WithStorageDir(t.TempDir()),
	)
	require.NoError(t, err)

	assert.Equal(t, "from-option", cfg.Name)
	assert.Equal(t, "file", cfg.Storage.Provider)
}

func TestNewConfig_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
name: dc-yaml
storage:
  provider: file
  dir: /tmp/dc-yaml
demo:
  seed: false
telemetry:
  enabled: true
  service_name: dc-yaml-svc
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := NewConfig(WithConfigFile(path))
	require.NoError(t, err)

	assert.Equal(t, "dc-yaml", cfg.Name)
	assert.Equal(t, "file", cfg.Storage.Provider)
	assert.Equal(t, "/tmp/dc-yaml", cfg.Storage.Dir)
	assert.False(t, cfg.Demo.Seed)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "dc-yaml-svc", cfg.Telemetry.ServiceName)
}

func TestNewConfig_BadConfigFile(t *testing.T) {
	_, err := NewConfig(WithConfigFile("/nonexistent/config.yaml"))
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr bool
	}{
		{
			name:    "default inmemory is valid",
			opts:    nil,
			wantErr: false,
		},
		{
			name:    "unknown provider",
			opts:    []Option{WithStorageProvider("dynamodb")},
			wantErr: true,
		},
		{
			name:    "redis without URL",
			opts:    []Option{WithStorageProvider("redis")},
			wantErr: true,
		},
		{
			name:    "redis with URL",
			opts:    []Option{WithRedisURL("redis://localhost:6379")},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfig(tt.opts...)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsConfigurationError(err))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestConfig_BuildStorage(t *testing.T) {
	cfg, err := NewConfig(WithStorageDir(t.TempDir()))
	require.NoError(t, err)

	storage, err := cfg.BuildStorage(&NoOpLogger{})
	require.NoError(t, err)
	assert.IsType(t, &FileStorage{}, storage)

	cfg, err = NewConfig()
	require.NoError(t, err)

	storage, err = cfg.BuildStorage(nil)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStorage{}, storage)
}
