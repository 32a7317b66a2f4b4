package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"rcwebui/pkg/rclone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetGlobal() {
	globalConfig = nil
	configOnce = sync.Once{}
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))
	return configPath
}

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	settingsPath := filepath.Join(tmpDir, "data", "settings.db")

	configContent := `
server:
  port: 8080
  host: "0.0.0.0"
  shutdown_timeout: 30s

rc:
  url: "http://localhost:5572"
  auth_key: "dXNlcjpwYXNz"
  timeout: 45s

settings:
  path: "` + settingsPath + `"

logging:
  level: "debug"
  format: "text"
  file: "` + tmpDir + `/logs/rcwebui.log"
  max_size_mb: 5
  max_backups: 2
`

	configPath := writeConfig(t, tmpDir, configContent)
	resetGlobal()

	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "http://localhost:5572", cfg.RC.URL)
	assert.Equal(t, "dXNlcjpwYXNz", cfg.RC.AuthKey)
	assert.Equal(t, 45*time.Second, cfg.RC.Timeout)

	assert.Equal(t, settingsPath, cfg.Settings.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 5, cfg.Logging.MaxSizeMB)

	// Directories for the settings db and log file are created
	assert.DirExists(t, filepath.Join(tmpDir, "data"))
	assert.DirExists(t, filepath.Join(tmpDir, "logs"))

	assert.Same(t, cfg, Get())
}

func TestLoadConfigDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := writeConfig(t, tmpDir, `
settings:
  path: "`+tmpDir+`/settings.db"
`)
	resetGlobal()

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 5580, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, rclone.DefaultTimeout, cfg.RC.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name        string
		config      *Config
		expectError bool
		errorMsg    string
	}{
		{
			name: "invalid port - negative",
			config: &Config{
				Server:   ServerConfig{Port: -1},
				Settings: SettingsConfig{Path: "/tmp/s.db"},
			},
			expectError: true,
			errorMsg:    "invalid server port",
		},
		{
			name: "invalid port - too high",
			config: &Config{
				Server:   ServerConfig{Port: 99999},
				Settings: SettingsConfig{Path: "/tmp/s.db"},
			},
			expectError: true,
			errorMsg:    "invalid server port",
		},
		{
			name: "invalid rc url",
			config: &Config{
				Server:   ServerConfig{Port: 8080},
				RC:       RCConfig{URL: "localhost"},
				Settings: SettingsConfig{Path: "/tmp/s.db"},
			},
			expectError: true,
			errorMsg:    "invalid rc url",
		},
		{
			name: "auth key and user",
			config: &Config{
				Server:   ServerConfig{Port: 8080},
				RC:       RCConfig{URL: "http://localhost:5572", AuthKey: "abc", User: "admin"},
				Settings: SettingsConfig{Path: "/tmp/s.db"},
			},
			expectError: true,
			errorMsg:    "mutually exclusive",
		},
		{
			name: "unexpanded password",
			config: &Config{
				Server:   ServerConfig{Port: 8080},
				RC:       RCConfig{URL: "http://localhost:5572", User: "admin", Password: "${RC_PASS}"},
				Settings: SettingsConfig{Path: "/tmp/s.db"},
			},
			expectError: true,
			errorMsg:    "unset environment variable",
		},
		{
			name: "missing settings path",
			config: &Config{
				Server: ServerConfig{Port: 8080},
			},
			expectError: true,
			errorMsg:    "settings path is required",
		},
		{
			name: "valid config without rc url",
			config: &Config{
				Server:   ServerConfig{Port: 8080},
				Settings: SettingsConfig{Path: "/tmp/s.db"},
			},
			expectError: false,
		},
		{
			name: "valid config",
			config: &Config{
				Server:   ServerConfig{Port: 8080},
				RC:       RCConfig{URL: "http://localhost:5572", User: "admin", Password: "secret"},
				Settings: SettingsConfig{Path: "/tmp/s.db"},
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.validate()
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRCEndpoint(t *testing.T) {
	cfg := &Config{RC: RCConfig{URL: "http://rc:5572", User: "admin", Password: "secret"}}

	ep, err := cfg.RCEndpoint()
	require.NoError(t, err)
	assert.Equal(t, rclone.Endpoint{URL: "http://rc:5572", User: "admin", Password: "secret"}, ep)

	_, err = (&Config{}).RCEndpoint()
	assert.ErrorIs(t, err, rclone.ErrNoEndpoint)
}

func TestConfigReload(t *testing.T) {
	tmpDir := t.TempDir()
	settingsPath := tmpDir + "/settings.db"

	configPath := writeConfig(t, tmpDir, `
rc:
  url: "http://old:5572"
settings:
  path: "`+settingsPath+`"
`)

	cfg, err := loadConfig(configPath)
	require.NoError(t, err)

	changes := cfg.WatchForChanges()

	writeConfig(t, tmpDir, `
server:
  port: 9999
rc:
  url: "http://new:5572"
  auth_key: "bmV3OmtleQ=="
settings:
  path: "`+settingsPath+`"
logging:
  level: "warn"
`)

	require.NoError(t, cfg.reload(configPath))
	cfg.notifyWatchers()

	select {
	case <-changes:
	default:
		t.Fatal("expected change notification")
	}

	ep, err := cfg.RCEndpoint()
	require.NoError(t, err)
	assert.Equal(t, "http://new:5572", ep.URL)
	assert.Equal(t, "bmV3OmtleQ==", ep.AuthKey)
	assert.Equal(t, "warn", cfg.GetLogging().Level)

	// Listener settings are only read at startup
	assert.Equal(t, 5580, cfg.GetServer().Port)
}

func TestConfigReloadKeepsOldOnError(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := writeConfig(t, tmpDir, `
rc:
  url: "http://old:5572"
settings:
  path: "`+tmpDir+`/settings.db"
`)

	cfg, err := loadConfig(configPath)
	require.NoError(t, err)

	writeConfig(t, tmpDir, `
rc:
  url: "not a url"
settings:
  path: "`+tmpDir+`/settings.db"
`)

	assert.Error(t, cfg.reload(configPath))
	assert.Equal(t, "http://old:5572", cfg.GetRC().URL)
}

func TestLoadConfigWithEnvVars(t *testing.T) {
	tmpDir := t.TempDir()
	settingsPath := filepath.Join(tmpDir, "data", "test.db")

	configContent := `
server:
  port: 8080
  host: "${HOST_BIND}"

rc:
  url: "http://localhost:5572"
  user: "admin"
  password: "${RC_PASSWORD}"

settings:
  path: "${SETTINGS_PATH}"
`

	t.Setenv("HOST_BIND", "192.168.1.100")
	t.Setenv("RC_PASSWORD", "hunter2")
	t.Setenv("SETTINGS_PATH", settingsPath)

	configPath := writeConfig(t, tmpDir, configContent)
	resetGlobal()

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "192.168.1.100", cfg.Server.Host)
	assert.Equal(t, "hunter2", cfg.RC.Password)
	assert.Equal(t, settingsPath, cfg.Settings.Path)
}

func TestConfigMissingFile(t *testing.T) {
	resetGlobal()

	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestConfigInvalidYAML(t *testing.T) {
	invalidYAML := `
server:
  port: invalid_port
  host: test
`

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(invalidYAML), 0644))

	resetGlobal()

	_, err := Load(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal config")
}
