package pgdb_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/DRSN-tech/catalog/db"
	"github.com/DRSN-tech/catalog/internal/cfg"
	"github.com/DRSN-tech/catalog/internal/domain"
	"github.com/DRSN-tech/catalog/internal/repository/memory"
	"github.com/DRSN-tech/catalog/internal/repository/pgdb"
	"github.com/DRSN-tech/catalog/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/catalog/internal/repository/seed"
	"github.com/DRSN-tech/catalog/internal/storage"
	"github.com/DRSN-tech/catalog/internal/storage/storagetest"
	"github.com/DRSN-tech/catalog/pkg/logger"
	"github.com/DRSN-tech/catalog/pkg/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDatabaseEnv = "CATALOG_TEST_DATABASE_URL"

var _ storage.Storage = (*pgdb.Store)(nil)

var (
	testDB     *postgres.PgDatabase
	testDBErr  error
	testDBOnce sync.Once
)

// database подключается к тестовой базе один раз на пакет и применяет миграции.
// Без CATALOG_TEST_DATABASE_URL тест пропускается.
func database(t *testing.T) *postgres.PgDatabase {
	t.Helper()

	dsn := os.Getenv(testDatabaseEnv)
	if dsn == "" {
		t.Skipf("%s is not set", testDatabaseEnv)
	}

	testDBOnce.Do(func() {
		log := logger.NewNopLogger()
		storageCfg := &cfg.StorageCfg{
			DatabaseURL:     dsn,
			ConnectAttempts: 3,
			ConnectTimeout:  5 * time.Second,
			RetryBaseDelay:  200 * time.Millisecond,
			RetryMaxDelay:   time.Second,
			MaxConns:        8,
		}

		testDB, testDBErr = postgres.Connect(context.Background(), storageCfg, log)
		if testDBErr != nil {
			return
		}
		testDBErr = testDB.RunMigrations(db.Migrations, db.MigrationsDir, log)
	})
	require.NoError(t, testDBErr)

	return testDB
}

func newEmptyStore(t *testing.T) *pgdb.Store {
	t.Helper()

	s := pgdb.NewStore(database(t).Pool, converter.Rows{}, logger.NewNopLogger())
	require.NoError(t, s.Reset(context.Background()))
	return s
}

func TestStore_Contract(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Storage {
		return newEmptyStore(t)
	})
}

func TestStore_Seeded(t *testing.T) {
	s := newEmptyStore(t)

	seeded, err := s.Seed(context.Background())
	require.NoError(t, err)
	require.True(t, seeded)

	storagetest.RunSeeded(t, s)
}

func TestStore_SeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newEmptyStore(t)

	seeded, err := s.Seed(ctx)
	require.NoError(t, err)
	require.True(t, seeded)

	seeded, err = s.Seed(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)

	storagetest.RunSeeded(t, s)
}

func TestStore_SeedSkippedWhenTestimonialsExist(t *testing.T) {
	ctx := context.Background()
	s := newEmptyStore(t)

	_, err := s.CreateTestimonial(ctx, seed.Canonical().Testimonials[0])
	require.NoError(t, err)

	seeded, err := s.Seed(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)

	categories, err := s.ListCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)
}

// Одновременный старт нескольких экземпляров может задвоить начальный набор.
// Тест фиксирует допустимые исходы, а не требует строгой однократности.
func TestStore_ConcurrentSeed(t *testing.T) {
	ctx := context.Background()
	newEmptyStore(t)

	const instances = 4
	set := seed.Canonical()

	var (
		wg    sync.WaitGroup
		count int
		mu    sync.Mutex
	)
	for i := 0; i < instances; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := pgdb.NewStore(database(t).Pool, converter.Rows{}, logger.NewNopLogger())
			seeded, err := s.Seed(ctx)
			assert.NoError(t, err)
			if seeded {
				mu.Lock()
				count++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.GreaterOrEqual(t, count, 1)
	if count > 1 {
		t.Logf("seed applied by %d instances concurrently", count)
	}

	s := pgdb.NewStore(database(t).Pool, converter.Rows{}, logger.NewNopLogger())

	categories, err := s.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, len(set.Categories))

	testimonials, err := s.ListTestimonials(ctx)
	require.NoError(t, err)
	assert.Len(t, testimonials, count*len(set.Testimonials))
}

func TestStore_DifferentialAgainstMemory(t *testing.T) {
	pg := newEmptyStore(t)

	storagetest.Differential(t, memory.New(memory.WithoutSeed()), pg, storagetest.CatalogScript())
}

func TestStore_CatalogScript(t *testing.T) {
	storagetest.Golden(t, newEmptyStore(t), storagetest.CatalogScript(), storagetest.CatalogGolden())
}

func TestStore_CreatedAtIsUTC(t *testing.T) {
	ctx := context.Background()
	s := newEmptyStore(t)

	before := time.Now().Add(-time.Minute)
	p, err := s.CreateProduct(ctx, domain.ProductInput{Name: "Anillo Dorado", Price: domain.Ptr(220.0), CategoryID: 1})
	require.NoError(t, err)

	assert.Equal(t, time.UTC, p.CreatedAt.Location())
	assert.True(t, p.CreatedAt.After(before))

	got, found, err := s.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, p.CreatedAt.Equal(got.CreatedAt))
}
