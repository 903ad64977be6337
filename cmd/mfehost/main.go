package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/farism/mfe-host/adapters"
	"github.com/farism/mfe-host/adapters/gojaruntime"
	"github.com/farism/mfe-host/adapters/memory"
	"github.com/farism/mfe-host/adapters/myredis"
	"github.com/farism/mfe-host/adapters/mysqlite"
	"github.com/farism/mfe-host/api"
	"github.com/farism/mfe-host/domain"
	"github.com/farism/mfe-host/handlers"
	"github.com/farism/mfe-host/interfaces"
	"github.com/farism/mfe-host/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting module host")

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_http", config.HTTPPort,
		"storage_url", config.StorageURL,
		"redis_addr", config.Redis.Addr,
		"sqlite_path", config.SQLitePath,
		"refresh_interval", config.RefreshInterval,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Override store and branch override cache
	var overrides interfaces.OverrideStore
	var manifestCache interfaces.Cache[domain.ModuleDescriptor]
	switch {
	case config.Redis.Addr != "":
		redisClient, err := myredis.NewRedisUniversalClient(config.Redis.Addr)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create Redis client", "err", err)
			os.Exit(1)
		}
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			level.Error(logger).Log("msg", "Failed to connect to Redis", "err", err)
			os.Exit(1)
		}
		level.Info(logger).Log("msg", "Connected to Redis")

		marshal := func(d domain.ModuleDescriptor) ([]byte, error) { return json.Marshal(d) }
		unmarshal := func(b []byte) (domain.ModuleDescriptor, error) {
			var d domain.ModuleDescriptor
			err := json.Unmarshal(b, &d)
			return d, err
		}
		overrides = myredis.NewOverrideStore(redisClient, myredis.OverrideKey)
		manifestCache = myredis.NewCache[domain.ModuleDescriptor](redisClient, "branchOverride", marshal, unmarshal)

	case config.SQLitePath != "":
		db, err := mysqlite.Open(ctx, config.SQLitePath)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to open SQLite database", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		level.Info(logger).Log("msg", "Opened SQLite database", "path", config.SQLitePath)

		overrides = mysqlite.NewOverrideStore(db)
		manifestCache = memory.NewCache[domain.ModuleDescriptor]()

	default:
		level.Warn(logger).Log("msg", "No durable override store configured, overrides are kept in memory")
		overrides = memory.NewOverrideStore()
		manifestCache = memory.NewCache[domain.ModuleDescriptor]()
	}

	metrics := service.NewMetrics()

	// Module host
	var host *service.ModuleHost
	{
		storage := adapters.StorageHTTP(config.StorageURL, config.RegistryPath, config.FetchTimeout)
		resolver := service.NewQueryOverrideResolver(storage, manifestCache, config.ManifestCacheTTL, metrics, logger)
		host = service.NewModuleHost(storage, overrides, resolver, metrics, logger)

		host.Refresh(ctx)
		if config.RefreshInterval > 0 {
			go host.RefreshLoop(ctx, config.RefreshInterval)
		}
	}

	// Remote loader
	var loader *service.RemoteLoader
	{
		scripts := adapters.ScriptHTTP(config.FetchTimeout)
		runtime := gojaruntime.NewRuntime(config.ScriptTimeout)
		loader = service.NewRemoteLoader(scripts, runtime, config.RemoteLoadTimeout, metrics, logger)
	}

	// Create HTTP server (Echo)
	var e *echo.Echo
	{
		doc, err := api.Load()
		if err != nil {
			level.Error(logger).Log("msg", "Failed to load OpenAPI document", "err", err)
			os.Exit(1)
		}

		e = echo.New()
		e.HideBanner = true
		service.RegisterErrorHandler(e, logger)
		if err := handlers.RegisterRoutes(e, handlers.NewHTTPServer(host, loader, logger), doc, metrics.Handler()); err != nil {
			level.Error(logger).Log("msg", "Failed to register routes", "err", err)
			os.Exit(1)
		}
	}

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
			stop()
		}
	}()

	// Wait for interrupt signal
	<-ctx.Done()
	level.Info(logger).Log("msg", "Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
	}

	level.Info(logger).Log("msg", "Server stopped")
}
