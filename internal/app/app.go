// Package app собирает зависимости каталога и управляет жизненным циклом процесса.
package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/catalog/internal/cfg"
	v1Http "github.com/DRSN-tech/catalog/internal/delivery/v1/http"
	"github.com/DRSN-tech/catalog/internal/repository/redis"
	redisConv "github.com/DRSN-tech/catalog/internal/repository/redis/converter"
	"github.com/DRSN-tech/catalog/internal/storage"
	"github.com/DRSN-tech/catalog/internal/usecase"
	"github.com/DRSN-tech/catalog/pkg/clients"
	"github.com/DRSN-tech/catalog/pkg/closer"
	"github.com/DRSN-tech/catalog/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type App struct {
	cfg      *config.Config
	logger   logger.Logger
	provider *storage.Provider
	httpSrv  *v1Http.Server
	closer   *closer.Closer
}

// NewApp выбирает хранилище, поднимает кэш и собирает HTTP-сервер.
// Недоступность PostgreSQL или Redis не мешает старту.
func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	c := closer.NewCloser(0)

	startCtx, cancel := context.WithTimeout(context.Background(), startupTimeout(cfg.Storage))
	defer cancel()

	provider := storage.Select(startCtx, cfg.Storage, log)
	c.Add("storage", provider.Close)

	cache := initCache(startCtx, cfg.Redis, log, c)

	catalog := usecase.NewCatalogUC(provider, cache, log)

	r := chi.NewRouter()
	v1Http.NewRouter(r, log).Init(catalog)
	httpSrv := v1Http.NewServer(r, cfg.Http)
	c.Add("http", httpSrv.Stop)

	return &App{
		cfg:      cfg,
		logger:   log,
		provider: provider,
		httpSrv:  httpSrv,
		closer:   c,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до сигнала остановки или ошибки сервера.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s (storage: %s)", a.cfg.Http.Port, a.provider.Kind)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Http.ShutdownTimeout)
	defer cancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "shutdown finished with errors")
		appErr = errors.Join(appErr, err)
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

// initCache возвращает кэш товаров или nil, если Redis не настроен или не отвечает.
func initCache(ctx context.Context, cfg *config.RedisCfg, log logger.Logger, c *closer.Closer) usecase.CacheRepository {
	if !cfg.Enabled() {
		log.Infof("REDIS_ADDR is not set, product cache disabled")
		return nil
	}

	client := clients.NewRedisClient(cfg)
	if err := client.Ping(ctx); err != nil {
		log.Errorf(err, "failed to connect to redis, product cache disabled")
		_ = client.Close()
		return nil
	}
	c.Add("redis", func(context.Context) error { return client.Close() })

	return redis.NewCacheRepo(client, redisConv.Products{}, cfg, log.With("component", "cache"))
}

// startupTimeout покрывает все попытки подключения к базе и заполнение начальным набором.
func startupTimeout(c *config.StorageCfg) time.Duration {
	perAttempt := c.ConnectTimeout + c.RetryMaxDelay
	return time.Duration(c.ConnectAttempts)*perAttempt + c.SeedTimeout
}
