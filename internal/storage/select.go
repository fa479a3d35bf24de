package storage

import (
	"context"
	"errors"

	"github.com/DRSN-tech/catalog/db"
	"github.com/DRSN-tech/catalog/internal/cfg"
	"github.com/DRSN-tech/catalog/internal/repository/memory"
	"github.com/DRSN-tech/catalog/internal/repository/pgdb"
	"github.com/DRSN-tech/catalog/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/catalog/pkg/e"
	"github.com/DRSN-tech/catalog/pkg/logger"
	"github.com/DRSN-tech/catalog/pkg/postgres"
)

// Kind — вид выбранного хранилища.
type Kind string

const (
	KindEphemeral  Kind = "memory"
	KindPersistent Kind = "postgres"
)

// Provider — результат однократного выбора хранилища при старте.
// Не меняется после создания и передаётся зависимым компонентам явно.
type Provider struct {
	Kind    Kind
	Storage Storage

	// Fallback выставлен, если требовался PostgreSQL, но его не удалось поднять.
	Fallback bool

	db *postgres.PgDatabase
}

// Ping проверяет доступность бэкенда. Хранилище в памяти доступно всегда.
func (p *Provider) Ping(ctx context.Context) error {
	if p.db == nil {
		return nil
	}
	return p.db.Ping(ctx)
}

// Close освобождает соединения с базой, если они были открыты.
func (p *Provider) Close(_ context.Context) error {
	if p.db != nil {
		p.db.Close()
	}
	return nil
}

// persistentOpener поднимает PostgreSQL-хранилище: подключение, миграции, начальный набор.
type persistentOpener func(ctx context.Context, c *cfg.StorageCfg, log logger.Logger) (Storage, *postgres.PgDatabase, error)

// Select выбирает реализацию хранилища по конфигурации.
//
// PostgreSQL используется, если задан DATABASE_URL и не выставлен USE_IN_MEMORY_STORAGE.
// Любая ошибка инициализации PostgreSQL логируется, и процесс продолжает работу
// на хранилище в памяти с начальным набором.
func Select(ctx context.Context, c *cfg.StorageCfg, log logger.Logger) *Provider {
	return selectWith(ctx, c, log, openPersistent)
}

func selectWith(ctx context.Context, c *cfg.StorageCfg, log logger.Logger, open persistentOpener) *Provider {
	if !c.UsePersistent() {
		if c.UseInMemory && c.DatabaseURL != "" {
			log.Infof("USE_IN_MEMORY_STORAGE is set, ignoring DATABASE_URL")
		}
		log.Infof("using in-memory storage")
		return &Provider{Kind: KindEphemeral, Storage: memory.New()}
	}

	s, database, err := open(ctx, c, log)
	if err != nil {
		log.Errorf(err, "postgres storage initialization failed, falling back to in-memory storage")
		return &Provider{Kind: KindEphemeral, Storage: memory.New(), Fallback: true}
	}

	log.Infof("using postgres storage")
	return &Provider{Kind: KindPersistent, Storage: s, db: database}
}

func openPersistent(ctx context.Context, c *cfg.StorageCfg, log logger.Logger) (Storage, *postgres.PgDatabase, error) {
	const op = "storage.openPersistent"

	database, err := postgres.Connect(ctx, c, log)
	if err != nil {
		return nil, nil, e.Wrap(op, err)
	}

	if err := database.RunMigrations(db.Migrations, db.MigrationsDir, log); err != nil {
		database.Close()
		return nil, nil, e.Wrap(op, err)
	}

	store := pgdb.NewStore(database.Pool, converter.Rows{}, log.With("storage", string(KindPersistent)))

	seedCtx, cancel := context.WithTimeout(ctx, c.SeedTimeout)
	defer cancel()

	if _, err := store.Seed(seedCtx); err != nil {
		database.Close()
		return nil, nil, e.Wrap(op, errors.Join(e.ErrStorageUnavailable, err))
	}

	return store, database, nil
}
