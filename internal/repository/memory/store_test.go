package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/DRSN-tech/catalog/internal/domain"
	"github.com/DRSN-tech/catalog/internal/repository/memory"
	"github.com/DRSN-tech/catalog/internal/storage"
	"github.com/DRSN-tech/catalog/internal/storage/storagetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ storage.Storage = (*memory.Store)(nil)

func newEmptyStore(t *testing.T) storage.Storage {
	t.Helper()
	return memory.New(memory.WithoutSeed())
}

func TestStore_Contract(t *testing.T) {
	storagetest.Run(t, newEmptyStore)
}

func TestStore_Seeded(t *testing.T) {
	storagetest.RunSeeded(t, memory.New())
}

func TestStore_CatalogScript(t *testing.T) {
	storagetest.Golden(t, memory.New(memory.WithoutSeed()), storagetest.CatalogScript(), storagetest.CatalogGolden())
}

func TestStore_FreshInstanceResetsToSeed(t *testing.T) {
	ctx := context.Background()

	first := memory.New()
	_, err := first.CreateTestimonial(ctx, domain.TestimonialInput{CustomerName: "Ana", Comment: "ok", Rating: 5})
	require.NoError(t, err)
	_, err = first.DeleteProduct(ctx, 1)
	require.NoError(t, err)

	// Новый экземпляр имитирует холодный старт: изменения предыдущего не сохраняются.
	second := memory.New()
	storagetest.RunSeeded(t, second)
}

func TestStore_UsesClock(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.FixedZone("MSK", 3*60*60))
	s := memory.New(memory.WithoutSeed(), memory.WithClock(func() time.Time { return fixed }))

	p, err := s.CreateProduct(context.Background(), domain.ProductInput{Name: "x", Price: domain.Ptr(1.0), CategoryID: 1})
	require.NoError(t, err)

	assert.Equal(t, time.UTC, p.CreatedAt.Location())
	assert.True(t, p.CreatedAt.Equal(fixed.Truncate(time.Microsecond)))

	updated, _, err := s.UpdateProduct(context.Background(), p.ID, domain.ProductPatch{Name: domain.Ptr("y")})
	require.NoError(t, err)
	assert.Equal(t, p.CreatedAt, updated.CreatedAt)
}

func TestStore_ContactMessagesGetSequentialIDs(t *testing.T) {
	s := memory.New(memory.WithoutSeed())
	in := domain.ContactMessageInput{
		Name: "Ana", Email: "ana@example.com", Subject: "Hola", Message: "Mensaje suficientemente largo",
	}

	first, err := s.CreateContactMessage(context.Background(), in)
	require.NoError(t, err)
	second, err := s.CreateContactMessage(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, in.Message, second.Message)
}

func TestStore_ConcurrentCreates(t *testing.T) {
	s := memory.New(memory.WithoutSeed())
	ctx := context.Background()

	const workers, perWorker = 8, 50
	var wg sync.WaitGroup
	ids := make(chan int64, workers*perWorker)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				p, err := s.CreateProduct(ctx, domain.ProductInput{Name: "p", Price: domain.Ptr(1.0), CategoryID: 1})
				if err != nil {
					t.Error(err)
					return
				}
				ids <- p.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, workers*perWorker)
	for id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers*perWorker)

	all, err := s.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, workers*perWorker)
}
