package main

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/farism/mfe-host/adapters/myredis"

	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	envHTTPPort          = "SERVICE_PORT_HTTP"
	envConfigPath        = "CONFIG_PATH"
	envStorageURL        = "STORAGE_URL"
	envRegistryPath      = "REGISTRY_PATH"
	envRedisAddr         = "REDIS_ADDR"
	envSQLitePath        = "SQLITE_PATH"
	envFetchTimeoutMs    = "FETCH_TIMEOUT_MS"
	envRefreshIntervalMs = "REGISTRY_REFRESH_INTERVAL_MS"
	envManifestCacheMs   = "MANIFEST_CACHE_TTL_MS"
	envRemoteLoadMs      = "REMOTE_LOAD_TIMEOUT_MS"
	envScriptTimeoutMs   = "SCRIPT_TIMEOUT_MS"
)

// Defaults applied before the YAML file and the environment.
const (
	defaultStorageURL        = "https://mfestorage.s3.amazonaws.com"
	defaultRegistryPath      = "module-registry.json"
	defaultFetchTimeoutMs    = 5000
	defaultRefreshIntervalMs = 60000
	defaultManifestCacheMs   = 30000
	defaultRemoteLoadMs      = 10000
	defaultScriptTimeoutMs   = 2000
)

// Config holds the module host configuration loaded by LoadConfig.
// Redis.Addr and SQLitePath select the override store backend: redis when Redis.Addr is set,
// else sqlite when SQLitePath is set, else memory. RefreshInterval 0 disables periodic refresh;
// ManifestCacheTTL 0 keeps resolved branch overrides until restart.
type Config struct {
	HTTPPort          int
	StorageURL        string
	RegistryPath      string
	Redis             myredis.RedisConfig
	SQLitePath        string
	FetchTimeout      time.Duration
	RefreshInterval   time.Duration
	ManifestCacheTTL  time.Duration
	RemoteLoadTimeout time.Duration
	ScriptTimeout     time.Duration
}

// yamlConfig mirrors the environment variables; every field is optional.
type yamlConfig struct {
	HTTPPort          int    `yaml:"service_port_http"`
	StorageURL        string `yaml:"storage_url"`
	RegistryPath      string `yaml:"registry_path"`
	RedisAddr         string `yaml:"redis_addr"`
	SQLitePath        string `yaml:"sqlite_path"`
	FetchTimeoutMs    *int   `yaml:"fetch_timeout_ms"`
	RefreshIntervalMs *int   `yaml:"registry_refresh_interval_ms"`
	ManifestCacheMs   *int   `yaml:"manifest_cache_ttl_ms"`
	RemoteLoadMs      *int   `yaml:"remote_load_timeout_ms"`
	ScriptTimeoutMs   *int   `yaml:"script_timeout_ms"`
}

func loadYAMLConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out yamlConfig
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoadConfig builds the configuration from defaults, the optional YAML file at CONFIG_PATH and
// environment variables, in that order; environment variables win.
// SERVICE_PORT_HTTP is required (1-65535); STORAGE_URL must be an absolute http(s) URL.
func LoadConfig() (*Config, error) {
	httpPort := 0
	storageURL := defaultStorageURL
	registryPath := defaultRegistryPath
	redisAddr := ""
	sqlitePath := ""
	fetchTimeoutMs := defaultFetchTimeoutMs
	refreshIntervalMs := defaultRefreshIntervalMs
	manifestCacheMs := defaultManifestCacheMs
	remoteLoadMs := defaultRemoteLoadMs
	scriptTimeoutMs := defaultScriptTimeoutMs

	if configPath := strings.TrimSpace(os.Getenv(envConfigPath)); configPath != "" {
		if !filepath.IsAbs(configPath) {
			abs, err := filepath.Abs(configPath)
			if err != nil {
				return nil, err
			}
			configPath = abs
		}
		raw, err := loadYAMLConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", configPath, err)
		}
		if raw.HTTPPort != 0 {
			httpPort = raw.HTTPPort
		}
		storageURL = firstNonEmpty(raw.StorageURL, storageURL)
		registryPath = firstNonEmpty(raw.RegistryPath, registryPath)
		redisAddr = firstNonEmpty(raw.RedisAddr, redisAddr)
		sqlitePath = firstNonEmpty(raw.SQLitePath, sqlitePath)
		setIfPresent(&fetchTimeoutMs, raw.FetchTimeoutMs)
		setIfPresent(&refreshIntervalMs, raw.RefreshIntervalMs)
		setIfPresent(&manifestCacheMs, raw.ManifestCacheMs)
		setIfPresent(&remoteLoadMs, raw.RemoteLoadMs)
		setIfPresent(&scriptTimeoutMs, raw.ScriptTimeoutMs)
	}

	if s := strings.TrimSpace(os.Getenv(envHTTPPort)); s != "" {
		port, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", envHTTPPort, err)
		}
		httpPort = port
	}
	if httpPort == 0 {
		return nil, fmt.Errorf("%s is required", envHTTPPort)
	}
	if httpPort < 0 || httpPort > 65535 {
		return nil, fmt.Errorf("%s must be 1-65535, got %d", envHTTPPort, httpPort)
	}

	storageURL = firstNonEmpty(strings.TrimSpace(os.Getenv(envStorageURL)), storageURL)
	registryPath = firstNonEmpty(strings.TrimSpace(os.Getenv(envRegistryPath)), registryPath)
	redisAddr = firstNonEmpty(strings.TrimSpace(os.Getenv(envRedisAddr)), redisAddr)
	sqlitePath = firstNonEmpty(strings.TrimSpace(os.Getenv(envSQLitePath)), sqlitePath)

	u, err := url.Parse(storageURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%s must be an absolute http(s) url, got %q", envStorageURL, storageURL)
	}

	millis := []struct {
		env      string
		value    *int
		positive bool
	}{
		{envFetchTimeoutMs, &fetchTimeoutMs, true},
		{envRefreshIntervalMs, &refreshIntervalMs, false},
		{envManifestCacheMs, &manifestCacheMs, false},
		{envRemoteLoadMs, &remoteLoadMs, true},
		{envScriptTimeoutMs, &scriptTimeoutMs, true},
	}
	for _, m := range millis {
		if s := strings.TrimSpace(os.Getenv(m.env)); s != "" {
			v, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("invalid %s: %w", m.env, err)
			}
			*m.value = v
		}
		if *m.value < 0 || (m.positive && *m.value == 0) {
			return nil, fmt.Errorf("%s must be a positive integer (ms), got %d", m.env, *m.value)
		}
	}

	return &Config{
		HTTPPort:          httpPort,
		StorageURL:        storageURL,
		RegistryPath:      registryPath,
		Redis:             myredis.RedisConfig{Addr: redisAddr},
		SQLitePath:        sqlitePath,
		FetchTimeout:      time.Duration(fetchTimeoutMs) * time.Millisecond,
		RefreshInterval:   time.Duration(refreshIntervalMs) * time.Millisecond,
		ManifestCacheTTL:  time.Duration(manifestCacheMs) * time.Millisecond,
		RemoteLoadTimeout: time.Duration(remoteLoadMs) * time.Millisecond,
		ScriptTimeout:     time.Duration(scriptTimeoutMs) * time.Millisecond,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func setIfPresent(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
