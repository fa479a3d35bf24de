package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/DRSN-tech/catalog/internal/domain"
	"github.com/DRSN-tech/catalog/internal/repository/memory"
	"github.com/DRSN-tech/catalog/internal/storage"
	"github.com/DRSN-tech/catalog/pkg/e"
	"github.com/DRSN-tech/catalog/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type cacheSpy struct {
	products map[int64]domain.Product
	getErr   error
	deleted  []int64
	sets     int
}

func newCacheSpy() *cacheSpy {
	return &cacheSpy{products: map[int64]domain.Product{}}
}

func (c *cacheSpy) GetProduct(_ context.Context, id int64) (domain.Product, bool, error) {
	if c.getErr != nil {
		return domain.Product{}, false, c.getErr
	}
	p, ok := c.products[id]
	return p, ok, nil
}

func (c *cacheSpy) SetProducts(_ context.Context, products []domain.Product) error {
	c.sets++
	for _, p := range products {
		c.products[p.ID] = p
	}
	return nil
}

func (c *cacheSpy) DeleteProducts(_ context.Context, ids []int64) error {
	c.deleted = append(c.deleted, ids...)
	for _, id := range ids {
		delete(c.products, id)
	}
	return nil
}

func newUseCase(t *testing.T, cache CacheRepository) *CatalogUseCase {
	t.Helper()

	provider := &storage.Provider{Kind: storage.KindEphemeral, Storage: memory.New()}
	return NewCatalogUC(provider, cache, logger.NewNopLogger())
}

func TestCatalogUseCase_NotFound(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t, nil)

	_, err := uc.GetProduct(ctx, 999)
	assert.ErrorIs(t, err, e.ErrNotFound)

	_, err = uc.GetCategoryBySlug(ctx, "relojes")
	assert.ErrorIs(t, err, e.ErrNotFound)

	_, err = uc.UpdateProduct(ctx, 999, domain.ProductPatch{Name: domain.Ptr("x")})
	assert.ErrorIs(t, err, e.ErrNotFound)

	_, err = uc.UpdateCategory(ctx, 999, domain.CategoryPatch{})
	assert.ErrorIs(t, err, e.ErrNotFound)

	assert.ErrorIs(t, uc.DeleteProduct(ctx, 999), e.ErrNotFound)
	assert.ErrorIs(t, uc.DeleteCategory(ctx, 999), e.ErrNotFound)

	_, err = uc.GetUser(ctx, 1)
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestCatalogUseCase_ValidationBeforeStorage(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t, nil)

	_, err := uc.CreateTestimonial(ctx, domain.TestimonialInput{CustomerName: "Ana", Comment: "Bonito", Rating: 6})
	require.ErrorIs(t, err, e.ErrValidation)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "rating", verr.Fields[0].Field)

	testimonials, err := uc.ListTestimonials(ctx)
	require.NoError(t, err)
	assert.Len(t, testimonials, 3)

	_, err = uc.CreateProduct(ctx, domain.ProductInput{Name: "x", Price: domain.Ptr(-1.0), CategoryID: 1})
	assert.ErrorIs(t, err, e.ErrValidation)

	_, err = uc.SubmitContactMessage(ctx, domain.ContactMessageInput{
		Name: "Ana", Email: "ana@example.com", Subject: "Hola", Message: "corto",
	})
	assert.ErrorIs(t, err, e.ErrValidation)
}

func TestCatalogUseCase_CategoryConflict(t *testing.T) {
	uc := newUseCase(t, nil)

	_, err := uc.CreateCategory(context.Background(), domain.CategoryInput{Name: "Pulseras", Slug: "pulseras"})
	assert.ErrorIs(t, err, e.ErrConflict)
}

func TestCatalogUseCase_ProductReadThroughCache(t *testing.T) {
	ctx := context.Background()
	cache := newCacheSpy()
	uc := newUseCase(t, cache)

	p, err := uc.GetProduct(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, p, cache.products[1])

	// Попадание в кэш не обращается к хранилищу повторно.
	again, err := uc.GetProduct(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, p, again)
	assert.Equal(t, 1, cache.sets)
}

func TestCatalogUseCase_CacheInvalidatedOnWrite(t *testing.T) {
	ctx := context.Background()
	cache := newCacheSpy()
	uc := newUseCase(t, cache)

	_, err := uc.GetProduct(ctx, 2)
	require.NoError(t, err)

	updated, err := uc.UpdateProduct(ctx, 2, domain.ProductPatch{Price: domain.Ptr(500.0)})
	require.NoError(t, err)
	assert.Equal(t, 500.0, updated.Price)
	assert.NotContains(t, cache.products, int64(2))

	got, err := uc.GetProduct(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 500.0, got.Price)

	require.NoError(t, uc.DeleteProduct(ctx, 2))
	assert.Equal(t, []int64{2, 2}, cache.deleted)

	_, err = uc.GetProduct(ctx, 2)
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestCatalogUseCase_CacheFailureFallsBackToStorage(t *testing.T) {
	cache := newCacheSpy()
	cache.getErr = errors.New("redis down")
	uc := newUseCase(t, cache)

	p, err := uc.GetProduct(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.ID)
}

func TestCatalogUseCase_RegisterUserHashesPassword(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t, nil)

	u, err := uc.RegisterUser(ctx, domain.UserInput{Username: "admin", Password: "secret-pass"})
	require.NoError(t, err)
	assert.NotEqual(t, "secret-pass", u.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret-pass")))

	got, err := uc.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u, got)

	_, err = uc.RegisterUser(ctx, domain.UserInput{Username: "admin", Password: "another-pass"})
	assert.ErrorIs(t, err, e.ErrConflict)
}

func TestCatalogUseCase_Health(t *testing.T) {
	uc := NewCatalogUC(&storage.Provider{
		Kind:     storage.KindEphemeral,
		Storage:  memory.New(),
		Fallback: true,
	}, nil, logger.NewNopLogger())

	assert.Equal(t, HealthStatus{Storage: "memory", Fallback: true, Status: StatusOK}, uc.Health(context.Background()))
}
