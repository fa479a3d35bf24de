package storagetest

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/DRSN-tech/catalog/internal/domain"
	"github.com/DRSN-tech/catalog/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Expect — ожидаемый результат шага сценария.
type Expect struct {
	Step   string
	Result any
	Fails  bool
}

// Golden прогоняет сценарий на пустом хранилище и сверяет каждое наблюдение с want.
func Golden(t *testing.T, s storage.Storage, script []Step, want []Expect) {
	t.Helper()

	got := Replay(context.Background(), s, script)
	require.Len(t, got, len(want))

	for i := range want {
		require.Equal(t, want[i].Step, got[i].Step, "step %d", i)
		assert.Equal(t, want[i].Fails, got[i].Err != "", "step %d (%s): error %q", i, want[i].Step, got[i].Err)
		assert.Equal(t, want[i].Result, got[i].Result, "step %d (%s)", i, want[i].Step)
	}
}

// CatalogGolden — ожидаемые наблюдения для CatalogScript.
func CatalogGolden() []Expect {
	in := scriptProducts()
	product := func(id int64, idx int) domain.Product {
		return domain.NewProduct(id, in[idx], time.Time{})
	}

	p1 := product(1, 0)
	p2 := product(2, 1)
	p3 := product(3, 2)
	p4 := product(4, 3)
	p5 := domain.NewProduct(5, domain.ProductInput{Name: "Aretes de Mariposa", Price: domain.Ptr(280.0), CategoryID: 3}, time.Time{})

	p2Repriced := p2
	p2Repriced.Price = 310
	p2Repriced.Rating = 4.5

	p2MaxReviews := p2Repriced
	p2MaxReviews.ReviewCount = math.MaxInt32

	c1 := domain.Category{ID: 1, Name: "Categoria 1", Slug: "pulseras"}
	c2 := domain.Category{ID: 2, Name: "Categoria 2", Slug: "collares"}
	c3 := domain.Category{ID: 3, Name: "Categoria 3", Slug: "aretes"}
	c3Renamed := domain.Category{ID: 3, Name: "Aretes", Slug: "aretes", ImageURL: domain.Ptr("/a.png")}
	c1Reslugged := domain.Category{ID: 1, Name: "Categoria 1", Slug: "pulseras-finas"}
	c4 := domain.NewCategory(4, longCategory())

	user := domain.User{ID: 1, Username: "admin", Password: "hash"}

	return []Expect{
		{Step: "create category pulseras", Result: c1},
		{Step: "create category collares", Result: c2},
		{Step: "create category aretes", Result: c3},
		{Step: "duplicate slug", Fails: true},
		{Step: "create product Pulsera de Corazones", Result: p1},
		{Step: "create product Pulsera Azul", Result: p2},
		{Step: "create product Collar Flor de Loto", Result: p3},
		{Step: "create product Anillo Dorado", Result: p4},
		{Step: "products by category 1", Result: []domain.Product{p1, p2}},
		{Step: "update product price", Result: found[domain.Product]{p2Repriced, true}},
		{Step: "review count at int32 max", Result: found[domain.Product]{p2MaxReviews, true}},
		{Step: "review count above int32", Fails: true},
		{Step: "update missing product", Result: found[domain.Product]{}},
		{Step: "delete product 1", Result: true},
		{Step: "delete product 1 again", Result: false},
		{Step: "get deleted product", Result: found[domain.Product]{}},
		{Step: "create after delete", Result: p5},
		{Step: "get product with max id", Result: found[domain.Product]{}},
		{Step: "list products", Result: []domain.Product{p2MaxReviews, p3, p4, p5}},
		{Step: "rename category", Result: found[domain.Category]{c3Renamed, true}},
		{Step: "change only slug", Result: found[domain.Category]{c1Reslugged, true}},
		{Step: "change slug to a taken one", Fails: true},
		{Step: "category by slug", Result: found[domain.Category]{c3Renamed, true}},
		{Step: "previous slug is free", Result: found[domain.Category]{}},
		{Step: "nul in category name", Fails: true},
		{Step: "category with max length fields", Result: c4},
		{Step: "delete category 2", Result: true},
		{Step: "list categories", Result: []domain.Category{c1Reslugged, c3Renamed, c4}},
		{Step: "orphaned products survive", Result: []domain.Product{p3}},
		{Step: "products by max category id", Result: []domain.Product{}},
		{Step: "create testimonial", Result: domain.Testimonial{ID: 1, CustomerName: "Ana", Comment: "Hermoso", Rating: 5}},
		{Step: "list testimonials", Result: []domain.Testimonial{{ID: 1, CustomerName: "Ana", Comment: "Hermoso", Rating: 5}}},
		{Step: "contact message", Result: domain.NewContactMessage(1, scriptContactMessage(), time.Time{})},
		{Step: "create user", Result: user},
		{Step: "user by username", Result: found[domain.User]{user, true}},
		{Step: "duplicate user", Fails: true},
	}
}
