package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"streamhub/internal/catalog"
	"streamhub/internal/events"
	"streamhub/internal/middleware"
	"streamhub/internal/relay"
	"streamhub/internal/source"
	"streamhub/pkg/logging"
	"streamhub/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logging.Warnf("[config] no .env file loaded: %v", err)
	}

	cfg := utils.LoadServerConfig()
	logging.Setup(cfg.LogLevel, cfg.LogJSON)

	loader, cleanup, err := buildLoader(cfg)
	if err != nil {
		logging.Fatalf("[source] open %s source %s failed: %v", cfg.SourceDriver, cfg.SourcePath, err)
	}
	defer cleanup()

	store := catalog.NewStore(loader)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	if cat, err := store.Reload(startupCtx); err != nil {
		// keep serving: every endpoint answers with an empty catalog
		logging.Errorf("[catalog] initial load from %s failed: %v", loader.Name(), err)
	} else {
		logging.Infof("[catalog] loaded %d series, %d episodes from %s",
			len(cat.Series), cat.Episodes, loader.Name())
	}
	cancelStartup()

	router := gin.Default()
	router.Use(middleware.RequestID())

	// Optional: avoid “trusted all proxies” warning
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	hub := events.NewHub()
	router.GET("/ws", events.WSHandler(hub))

	router.GET("/health", func(c *gin.Context) {
		cat := store.Snapshot()
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"series":   len(cat.Series),
			"episodes": cat.Episodes,
			"loaded":   store.Loaded(),
		})
	})

	router.GET("/ready", func(c *gin.Context) {
		if !store.Loaded() {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not_ready",
				"source": store.SourceName(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "ready",
			"source": store.SourceName(),
		})
	})

	catalogHandler := catalog.NewHandler(store, hub)
	catalogHandler.RegisterRoutes(router)

	proxyGate := relay.NewRateLimiter(cfg.ProxyRPS, cfg.ProxyBurst)
	videoRelay := relay.New()
	videoRelay.RegisterRoutes(router, proxyGate.Gate())

	httpSrv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Infof("[http] API server listening on %s", cfg.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Infof("[http] shutdown signal received: %s", sig)
	case err := <-errCh:
		logging.Errorf("[http] server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logging.Errorf("[http] shutdown error: %v", err)
	}
	logging.Infof("[http] server stopped")
}

func buildLoader(cfg utils.ServerConfig) (catalog.Loader, func(), error) {
	switch cfg.SourceDriver {
	case utils.SourceDriverSQLite:
		db, err := source.NewSQLiteDB(cfg.SourcePath)
		if err != nil {
			return nil, nil, err
		}
		return db, func() { _ = db.Close() }, nil
	default:
		return source.NewJSONFile(cfg.SourcePath), func() {}, nil
	}
}
