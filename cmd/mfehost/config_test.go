package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable LoadConfig reads.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range []string{
		envHTTPPort, envConfigPath, envStorageURL, envRegistryPath, envRedisAddr, envSQLitePath,
		envFetchTimeoutMs, envRefreshIntervalMs, envManifestCacheMs, envRemoteLoadMs, envScriptTimeoutMs,
	} {
		t.Setenv(env, "")
	}
}

func TestLoadConfig_ServicePortRequired(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "SERVICE_PORT_HTTP is required")
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv(envHTTPPort, "8080")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, defaultStorageURL, cfg.StorageURL)
	assert.Equal(t, defaultRegistryPath, cfg.RegistryPath)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Empty(t, cfg.SQLitePath)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.Equal(t, time.Minute, cfg.RefreshInterval)
	assert.Equal(t, 30*time.Second, cfg.ManifestCacheTTL)
	assert.Equal(t, 10*time.Second, cfg.RemoteLoadTimeout)
	assert.Equal(t, 2*time.Second, cfg.ScriptTimeout)
}

func TestLoadConfig_YAMLWithEnvOverrides(t *testing.T) {
	clearEnv(t)
	cfgPath := filepath.Join(t.TempDir(), "mfehost.yaml")
	content := `
service_port_http: 9000
storage_url: http://storage.local
redis_addr: redis://redis:6379
fetch_timeout_ms: 1500
registry_refresh_interval_ms: 0
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))
	t.Setenv(envConfigPath, cfgPath)
	t.Setenv(envRedisAddr, "redis://other:6380")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.HTTPPort)
	assert.Equal(t, "http://storage.local", cfg.StorageURL)
	assert.Equal(t, "redis://other:6380", cfg.Redis.Addr)
	assert.Equal(t, 1500*time.Millisecond, cfg.FetchTimeout)
	assert.Zero(t, cfg.RefreshInterval)
	assert.Equal(t, 30*time.Second, cfg.ManifestCacheTTL)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{name: "port not a number", env: map[string]string{envHTTPPort: "http"}, wantErr: "invalid SERVICE_PORT_HTTP"},
		{name: "port out of range", env: map[string]string{envHTTPPort: "70000"}, wantErr: "must be 1-65535"},
		{name: "relative storage url", env: map[string]string{envHTTPPort: "8080", envStorageURL: "mfestorage"}, wantErr: "STORAGE_URL must be an absolute"},
		{name: "zero fetch timeout", env: map[string]string{envHTTPPort: "8080", envFetchTimeoutMs: "0"}, wantErr: "FETCH_TIMEOUT_MS must be a positive"},
		{name: "negative cache ttl", env: map[string]string{envHTTPPort: "8080", envManifestCacheMs: "-1"}, wantErr: "MANIFEST_CACHE_TTL_MS must be a positive"},
		{name: "invalid duration", env: map[string]string{envHTTPPort: "8080", envRemoteLoadMs: "10s"}, wantErr: "invalid REMOTE_LOAD_TIMEOUT_MS"},
		{name: "missing config file", env: map[string]string{envHTTPPort: "8080", envConfigPath: "/does/not/exist.yaml"}, wantErr: "load config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadConfig()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
