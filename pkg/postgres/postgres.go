package postgres

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"time"

	"github.com/DRSN-tech/catalog/internal/cfg"
	"github.com/DRSN-tech/catalog/pkg/e"
	"github.com/DRSN-tech/catalog/pkg/jitter"
	"github.com/DRSN-tech/catalog/pkg/logger"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// PgDatabase инкапсулирует подключение к PostgreSQL и управление миграциями.
type PgDatabase struct {
	Pool *pgxpool.Pool
	Dsn  string
	cfg  *cfg.StorageCfg
}

func NewPgDatabase(pool *pgxpool.Pool, cfg *cfg.StorageCfg, dsn string) *PgDatabase {
	return &PgDatabase{Pool: pool, cfg: cfg, Dsn: dsn}
}

// Connect устанавливает соединение с PostgreSQL, повторяя попытки
// с экспоненциальной задержкой и джиттером.
func Connect(ctx context.Context, cfg *cfg.StorageCfg, log logger.Logger) (*PgDatabase, error) {
	const op = "PgDatabase.Connect"

	if cfg.DatabaseURL == "" {
		return nil, e.Wrap(op, e.ErrDatabaseURLMissing)
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	poolCfg.MaxConns = cfg.MaxConns

	var lastErr error
	for attempt := 0; attempt < cfg.ConnectAttempts; attempt++ {
		if attempt > 0 {
			delay := jitter.ExponentialBackoff(cfg.RetryBaseDelay, cfg.RetryMaxDelay, attempt-1, jitter.DefaultJitter)
			log.Warnf("postgres connection attempt %d/%d failed, retrying in %s: %v",
				attempt, cfg.ConnectAttempts, delay, lastErr)

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, e.Wrap(op, ctx.Err())
			}
		}

		pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			lastErr = err
			continue
		}

		pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
		err = pool.Ping(pingCtx)
		cancel()
		if err != nil {
			pool.Close()
			lastErr = err
			continue
		}

		return NewPgDatabase(pool, cfg, cfg.DatabaseURL), nil
	}

	return nil, e.Wrap(op, errors.Join(e.ErrStorageUnavailable, lastErr))
}

func (db *PgDatabase) Ping(ctx context.Context) error {
	const op = "PgDatabase.Ping"
	ctx, cancel := context.WithTimeout(ctx, db.cfg.ConnectTimeout)
	defer cancel()

	if err := db.Pool.Ping(ctx); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// Close корректно закрывает пул соединений к базе данных.
func (db *PgDatabase) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}

// RunMigrations применяет ожидающие миграции из встроенной файловой системы.
// golang-migrate берёт advisory lock, поэтому одновременный запуск нескольких
// экземпляров безопасен.
func (db *PgDatabase) RunMigrations(migrations fs.FS, dir string, logger logger.Logger) error {
	const (
		op                 = "PgDatabase.RunMigrations"
		driverName         = "pgx"
		databaseDriverName = "postgres"
		sourceName         = "iofs"
	)

	source, err := iofs.New(migrations, dir)
	if err != nil {
		return e.Wrap(op, err)
	}

	sqlDb, err := sql.Open(driverName, db.Dsn)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer sqlDb.Close()

	driver, err := postgres.WithInstance(sqlDb, &postgres.Config{})
	if err != nil {
		return e.Wrap(op, err)
	}

	m, err := migrate.NewWithInstance(sourceName, source, databaseDriverName, driver)
	if err != nil {
		return e.Wrap(op, err)
	}

	err = m.Up()
	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Debugf("migrations: schema is up to date")
			return nil
		}
		return e.Wrap(op, err)
	}

	logger.Infof("migrations applied successfully")
	return nil
}
