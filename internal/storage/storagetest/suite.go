// Package storagetest содержит общий набор проверок контракта storage.Storage.
// Один и тот же набор прогоняется для хранилища в памяти и для PostgreSQL.
package storagetest

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/catalog/internal/domain"
	"github.com/DRSN-tech/catalog/internal/repository/seed"
	"github.com/DRSN-tech/catalog/internal/storage"
	"github.com/DRSN-tech/catalog/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory возвращает новое пустое хранилище: без начального набора, с id, начинающимися с 1.
type Factory func(t *testing.T) storage.Storage

// Run прогоняет все проверки контракта, создавая отдельное хранилище для каждой.
func Run(t *testing.T, newStore Factory) {
	tests := []struct {
		name string
		fn   func(t *testing.T, s storage.Storage)
	}{
		{"CreateCategoryAssignsFirstID", testCreateCategoryAssignsFirstID},
		{"CreateProductAppliesDefaults", testCreateProductAppliesDefaults},
		{"CreateThenGetRoundTrip", testCreateThenGetRoundTrip},
		{"IDsStrictlyIncreasingNeverReused", testIDsNeverReused},
		{"DeleteThenGetNotFound", testDeleteThenGetNotFound},
		{"DeleteMissingReturnsFalse", testDeleteMissingReturnsFalse},
		{"UpdateChangesOnlyPatchedFields", testUpdateChangesOnlyPatchedFields},
		{"UpdateMissingNotFound", testUpdateMissingNotFound},
		{"UpdateEmptyPatchReturnsCurrent", testUpdateEmptyPatchReturnsCurrent},
		{"ProductsByCategory", testProductsByCategory},
		{"CategoryBySlug", testCategoryBySlug},
		{"CategorySlugConflict", testCategorySlugConflict},
		{"CategoryDeleteDoesNotCascade", testCategoryDeleteDoesNotCascade},
		{"ProductCategoryNotEnforced", testProductCategoryNotEnforced},
		{"Testimonials", testTestimonials},
		{"ContactMessage", testContactMessage},
		{"Users", testUsers},
		{"ReturnedValuesAreCopies", testReturnedValuesAreCopies},
		{"EmptyCollections", testEmptyCollections},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fn(t, newStore(t))
		})
	}
}

// RunSeeded проверяет хранилище, только что заполненное каноническим набором.
func RunSeeded(t *testing.T, s storage.Storage) {
	ctx := context.Background()
	set := seed.Canonical()

	categories, err := s.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, len(set.Categories))
	for i, c := range categories {
		assert.Equal(t, int64(i+1), c.ID)
		assert.Equal(t, set.Categories[i].Slug, c.Slug)
	}

	products, err := s.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, len(set.Products))
	for i, p := range products {
		want := set.Products[i]
		assert.Equal(t, want.Name, p.Name)
		assert.Equal(t, want.Rating, p.Rating)
		assert.Equal(t, want.ReviewCount, p.ReviewCount)

		c, found, err := s.GetCategoryBySlug(ctx, want.CategorySlug)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, c.ID, p.CategoryID)
	}

	testimonials, err := s.ListTestimonials(ctx)
	require.NoError(t, err)
	require.Len(t, testimonials, len(set.Testimonials))

	// Счётчики продолжаются после начального набора.
	created, err := s.CreateProduct(ctx, domain.ProductInput{Name: "Nuevo", Price: domain.Ptr(100.0), CategoryID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(len(set.Products)+1), created.ID)
}

func mustCategory(t *testing.T, s storage.Storage, name, slug string) domain.Category {
	t.Helper()
	c, err := s.CreateCategory(context.Background(), domain.CategoryInput{Name: name, Slug: slug})
	require.NoError(t, err)
	return c
}

func mustProduct(t *testing.T, s storage.Storage, name string, price float64, categoryID int64) domain.Product {
	t.Helper()
	p, err := s.CreateProduct(context.Background(), domain.ProductInput{Name: name, Price: domain.Ptr(price), CategoryID: categoryID})
	require.NoError(t, err)
	return p
}

func testCreateCategoryAssignsFirstID(t *testing.T, s storage.Storage) {
	c, err := s.CreateCategory(context.Background(), domain.CategoryInput{Name: "Pulseras", Slug: "pulseras"})
	require.NoError(t, err)

	assert.Equal(t, domain.Category{ID: 1, Name: "Pulseras", Slug: "pulseras", ImageURL: nil}, c)
}

func testCreateProductAppliesDefaults(t *testing.T, s storage.Storage) {
	before := time.Now().Add(-time.Minute)

	p, err := s.CreateProduct(context.Background(), domain.ProductInput{
		Name:        "Anillo Dorado",
		Price:       domain.Ptr(220.0),
		CategoryID:  1,
		Description: domain.Ptr("Anillo con cuentas doradas"),
	})
	require.NoError(t, err)

	assert.Positive(t, p.ID)
	assert.Equal(t, "Anillo Dorado", p.Name)
	assert.Equal(t, 220.0, p.Price)
	assert.Equal(t, int64(1), p.CategoryID)
	assert.Equal(t, "Anillo con cuentas doradas", *p.Description)
	assert.Nil(t, p.ImageURL)
	assert.Zero(t, p.Rating)
	assert.Zero(t, p.ReviewCount)
	assert.True(t, p.CreatedAt.After(before), "createdAt %v must be set", p.CreatedAt)
}

func testCreateThenGetRoundTrip(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	c, err := s.CreateCategory(ctx, domain.CategoryInput{Name: "Collares", Slug: "collares", ImageURL: domain.Ptr("/c.png")})
	require.NoError(t, err)
	gotC, found, err := s.GetCategoryBySlug(ctx, "collares")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, c, gotC)

	p := mustProduct(t, s, "Collar Flor de Loto", 450, c.ID)
	gotP, found, err := s.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, found)
	assertSameProduct(t, p, gotP)

	u, err := s.CreateUser(ctx, domain.UserInput{Username: "admin", Password: "hash"})
	require.NoError(t, err)
	gotU, found, err := s.GetUser(ctx, u.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, u, gotU)
}

func testIDsNeverReused(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	first := mustProduct(t, s, "a", 1, 1)
	second := mustProduct(t, s, "b", 2, 1)
	third := mustProduct(t, s, "c", 3, 1)
	assert.Less(t, first.ID, second.ID)
	assert.Less(t, second.ID, third.ID)

	deleted, err := s.DeleteProduct(ctx, third.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	fourth := mustProduct(t, s, "d", 4, 1)
	assert.Greater(t, fourth.ID, third.ID)

	c1 := mustCategory(t, s, "Uno", "uno")
	_, err = s.DeleteCategory(ctx, c1.ID)
	require.NoError(t, err)
	c2 := mustCategory(t, s, "Uno", "uno")
	assert.Greater(t, c2.ID, c1.ID)
}

func testDeleteThenGetNotFound(t *testing.T, s storage.Storage) {
	ctx := context.Background()
	p := mustProduct(t, s, "Aretes", 280, 1)

	deleted, err := s.DeleteProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, found, err := s.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, found)

	deleted, err = s.DeleteProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "second delete must be a no-op")
}

func testDeleteMissingReturnsFalse(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	deleted, err := s.DeleteProduct(ctx, 9999)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = s.DeleteCategory(ctx, 9999)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, found, err := s.GetProduct(ctx, 9999)
	require.NoError(t, err)
	assert.False(t, found)
}

func testUpdateChangesOnlyPatchedFields(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	p, err := s.CreateProduct(ctx, domain.ProductInput{
		Name:        "Pulsera",
		Price:       domain.Ptr(320.0),
		CategoryID:  1,
		Description: domain.Ptr("roja"),
		ImageURL:    domain.Ptr("/p.png"),
	})
	require.NoError(t, err)

	updated, found, err := s.UpdateProduct(ctx, p.ID, domain.ProductPatch{Price: domain.Ptr(350.5)})
	require.NoError(t, err)
	require.True(t, found)

	want := p
	want.Price = 350.5
	assertSameProduct(t, want, updated)

	got, _, err := s.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assertSameProduct(t, want, got)

	c := mustCategory(t, s, "Anillos", "anillos")
	uc, found, err := s.UpdateCategory(ctx, c.ID, domain.CategoryPatch{ImageURL: domain.Ptr("/a.png")})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, domain.Category{ID: c.ID, Name: "Anillos", Slug: "anillos", ImageURL: domain.Ptr("/a.png")}, uc)

	uc, found, err = s.UpdateCategory(ctx, c.ID, domain.CategoryPatch{Name: domain.Ptr("Anillos finos"), Slug: domain.Ptr("anillos-finos")})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, domain.Category{ID: c.ID, Name: "Anillos finos", Slug: "anillos-finos", ImageURL: domain.Ptr("/a.png")}, uc)

	_, found, err = s.GetCategoryBySlug(ctx, "anillos")
	require.NoError(t, err)
	assert.False(t, found)
}

func testUpdateMissingNotFound(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	_, found, err := s.UpdateProduct(ctx, 9999, domain.ProductPatch{Name: domain.Ptr("x")})
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = s.UpdateCategory(ctx, 9999, domain.CategoryPatch{Name: domain.Ptr("x")})
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = s.UpdateProduct(ctx, 9999, domain.ProductPatch{})
	require.NoError(t, err)
	assert.False(t, found)
}

func testUpdateEmptyPatchReturnsCurrent(t *testing.T, s storage.Storage) {
	ctx := context.Background()
	p := mustProduct(t, s, "Collar", 450, 2)

	got, found, err := s.UpdateProduct(ctx, p.ID, domain.ProductPatch{})
	require.NoError(t, err)
	require.True(t, found)
	assertSameProduct(t, p, got)

	c := mustCategory(t, s, "Aretes", "aretes")
	gotC, found, err := s.UpdateCategory(ctx, c.ID, domain.CategoryPatch{})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, c, gotC)
}

func testProductsByCategory(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	a := mustProduct(t, s, "Pulsera 1", 100, 1)
	b := mustProduct(t, s, "Pulsera 2", 200, 1)
	mustProduct(t, s, "Collar", 300, 2)

	got, err := s.ListProductsByCategory(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)

	ids := []int64{got[0].ID, got[1].ID}
	assert.ElementsMatch(t, []int64{a.ID, b.ID}, ids)
	for _, p := range got {
		assert.Equal(t, int64(1), p.CategoryID)
	}

	// Перенос товара в другую категорию меняет выборку.
	_, _, err = s.UpdateProduct(ctx, b.ID, domain.ProductPatch{CategoryID: domain.Ptr(int64(2))})
	require.NoError(t, err)

	got, err = s.ListProductsByCategory(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func testCategoryBySlug(t *testing.T, s storage.Storage) {
	ctx := context.Background()
	mustCategory(t, s, "Pulseras", "pulseras")
	want := mustCategory(t, s, "Collares", "collares")

	got, found, err := s.GetCategoryBySlug(ctx, "collares")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, want, got)

	_, found, err = s.GetCategoryBySlug(ctx, "inexistente")
	require.NoError(t, err)
	assert.False(t, found)
}

func testCategorySlugConflict(t *testing.T, s storage.Storage) {
	ctx := context.Background()
	mustCategory(t, s, "Pulseras", "pulseras")
	other := mustCategory(t, s, "Collares", "collares")

	_, err := s.CreateCategory(ctx, domain.CategoryInput{Name: "Otra", Slug: "pulseras"})
	require.ErrorIs(t, err, e.ErrConflict)

	_, _, err = s.UpdateCategory(ctx, other.ID, domain.CategoryPatch{Slug: domain.Ptr("pulseras")})
	require.ErrorIs(t, err, e.ErrConflict)

	// Повторная установка собственного слага конфликтом не считается.
	_, found, err := s.UpdateCategory(ctx, other.ID, domain.CategoryPatch{Slug: domain.Ptr("collares")})
	require.NoError(t, err)
	assert.True(t, found)

	all, err := s.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func testCategoryDeleteDoesNotCascade(t *testing.T, s storage.Storage) {
	ctx := context.Background()
	c := mustCategory(t, s, "Pulseras", "pulseras")
	p := mustProduct(t, s, "Pulsera", 100, c.ID)

	deleted, err := s.DeleteCategory(ctx, c.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	got, found, err := s.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, c.ID, got.CategoryID)
}

func testProductCategoryNotEnforced(t *testing.T, s storage.Storage) {
	p := mustProduct(t, s, "Huérfano", 10, 4242)
	assert.Equal(t, int64(4242), p.CategoryID)
}

func testTestimonials(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	first, err := s.CreateTestimonial(ctx, domain.TestimonialInput{
		CustomerName:  "Ana",
		Comment:       "Me encantó",
		Rating:        5,
		CustomerSince: domain.Ptr("2020"),
	})
	require.NoError(t, err)
	second, err := s.CreateTestimonial(ctx, domain.TestimonialInput{CustomerName: "Luis", Comment: "Bien", Rating: 3})
	require.NoError(t, err)

	assert.Less(t, first.ID, second.ID)
	assert.False(t, first.CreatedAt.IsZero())
	assert.Nil(t, second.CustomerImage)

	all, err := s.ListTestimonials(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assertSameTestimonial(t, first, all[0])
	assertSameTestimonial(t, second, all[1])
}

func testContactMessage(t *testing.T, s storage.Storage) {
	ctx := context.Background()
	in := domain.ContactMessageInput{
		Name:    "Ana",
		Email:   "ana@example.com",
		Subject: "Pedido especial",
		Message: "Quisiera un collar personalizado.",
	}

	m1, err := s.CreateContactMessage(ctx, in)
	require.NoError(t, err)
	m2, err := s.CreateContactMessage(ctx, in)
	require.NoError(t, err)

	assert.Less(t, m1.ID, m2.ID)
	assert.Equal(t, in.Email, m1.Email)
	assert.Equal(t, in.Message, m1.Message)
	assert.False(t, m1.CreatedAt.IsZero())
}

func testUsers(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	u, err := s.CreateUser(ctx, domain.UserInput{Username: "maria", Password: "hash"})
	require.NoError(t, err)
	assert.Equal(t, "maria", u.Username)

	got, found, err := s.GetUserByUsername(ctx, "maria")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, u, got)

	_, found, err = s.GetUserByUsername(ctx, "nadie")
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = s.GetUser(ctx, u.ID+100)
	require.NoError(t, err)
	assert.False(t, found)

	_, err = s.CreateUser(ctx, domain.UserInput{Username: "maria", Password: "other"})
	require.ErrorIs(t, err, e.ErrConflict)
}

func testReturnedValuesAreCopies(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	c, err := s.CreateCategory(ctx, domain.CategoryInput{Name: "Aretes", Slug: "aretes", ImageURL: domain.Ptr("/a.png")})
	require.NoError(t, err)
	*c.ImageURL = "/mutated.png"
	c.Name = "mutated"

	got, _, err := s.GetCategoryBySlug(ctx, "aretes")
	require.NoError(t, err)
	assert.Equal(t, "/a.png", *got.ImageURL)
	assert.Equal(t, "Aretes", got.Name)

	in := domain.ProductInput{Name: "Arete", Price: domain.Ptr(10.0), CategoryID: c.ID, Description: domain.Ptr("orig")}
	p, err := s.CreateProduct(ctx, in)
	require.NoError(t, err)
	*in.Description = "changed after create"

	list, err := s.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "orig", *list[0].Description)
	*list[0].Description = "changed in list"

	again, _, err := s.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "orig", *again.Description)
}

func testEmptyCollections(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	categories, err := s.ListCategories(ctx)
	require.NoError(t, err)
	assert.NotNil(t, categories)
	assert.Empty(t, categories)

	products, err := s.ListProductsByCategory(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)

	testimonials, err := s.ListTestimonials(ctx)
	require.NoError(t, err)
	assert.NotNil(t, testimonials)
	assert.Empty(t, testimonials)
}

func assertSameProduct(t *testing.T, want, got domain.Product) {
	t.Helper()
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt), "createdAt: want %v, got %v", want.CreatedAt, got.CreatedAt)
	want.CreatedAt, got.CreatedAt = time.Time{}, time.Time{}
	assert.Equal(t, want, got)
}

func assertSameTestimonial(t *testing.T, want, got domain.Testimonial) {
	t.Helper()
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt), "createdAt: want %v, got %v", want.CreatedAt, got.CreatedAt)
	want.CreatedAt, got.CreatedAt = time.Time{}, time.Time{}
	assert.Equal(t, want, got)
}
