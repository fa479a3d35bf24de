package storagetest

import (
	"context"
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/DRSN-tech/catalog/internal/domain"
	"github.com/DRSN-tech/catalog/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Step — одна операция сценария, возвращающая наблюдаемый результат.
type Step struct {
	Name string
	Do   func(ctx context.Context, s storage.Storage) (any, error)
}

// Observation — результат шага, пригодный для сравнения между хранилищами.
type Observation struct {
	Step   string
	Result any
	Err    string
}

// Replay выполняет сценарий и возвращает последовательность наблюдений.
// Время создания обнуляется: оно назначается часами конкретного бэкенда.
func Replay(ctx context.Context, s storage.Storage, script []Step) []Observation {
	out := make([]Observation, 0, len(script))
	for _, step := range script {
		res, err := step.Do(ctx, s)
		obs := Observation{Step: step.Name, Result: normalize(res)}
		if err != nil {
			obs.Err = err.Error()
			obs.Result = nil
		}
		out = append(out, obs)
	}
	return out
}

// Differential прогоняет один и тот же сценарий на двух пустых хранилищах
// и требует совпадения всех наблюдений.
func Differential(t *testing.T, a, b storage.Storage, script []Step) {
	t.Helper()
	ctx := context.Background()

	left := Replay(ctx, a, script)
	right := Replay(ctx, b, script)
	require.Len(t, right, len(left))

	for i := range left {
		// Тексты ошибок различаются местом возникновения, сравнивается только факт ошибки.
		assert.Equal(t, left[i].Err != "", right[i].Err != "", "step %d (%s): error mismatch: %q vs %q",
			i, left[i].Step, left[i].Err, right[i].Err)
		assert.Equal(t, left[i].Result, right[i].Result, "step %d (%s)", i, left[i].Step)
	}
}

type found[T any] struct {
	Value T
	Found bool
}

func normalize(v any) any {
	switch x := v.(type) {
	case domain.Product:
		x.CreatedAt = time.Time{}
		return x
	case []domain.Product:
		out := make([]domain.Product, len(x))
		for i := range x {
			out[i] = normalize(x[i]).(domain.Product)
		}
		return out
	case found[domain.Product]:
		x.Value = normalize(x.Value).(domain.Product)
		return x
	case domain.Testimonial:
		x.CreatedAt = time.Time{}
		return x
	case []domain.Testimonial:
		out := make([]domain.Testimonial, len(x))
		for i := range x {
			out[i] = normalize(x[i]).(domain.Testimonial)
		}
		return out
	case domain.ContactMessage:
		x.CreatedAt = time.Time{}
		return x
	default:
		return v
	}
}

// validated проверяет вход так же, как это делает use case перед обращением к хранилищу.
func validated(in any, do func() (any, error)) (any, error) {
	if err := domain.Validate(in); err != nil {
		return nil, err
	}
	return do()
}

// CatalogScript — типовой сценарий работы каталога, затрагивающий все операции фасада
// и граничные значения, которые оба хранилища обязаны обрабатывать одинаково.
func CatalogScript() []Step {
	var steps []Step
	add := func(name string, fn func(ctx context.Context, s storage.Storage) (any, error)) {
		steps = append(steps, Step{Name: name, Do: fn})
	}

	for i, slug := range []string{"pulseras", "collares", "aretes"} {
		name := fmt.Sprintf("Categoria %d", i+1)
		add("create category "+slug, func(ctx context.Context, s storage.Storage) (any, error) {
			return s.CreateCategory(ctx, domain.CategoryInput{Name: name, Slug: slug})
		})
	}
	add("duplicate slug", func(ctx context.Context, s storage.Storage) (any, error) {
		return s.CreateCategory(ctx, domain.CategoryInput{Name: "Otra", Slug: "pulseras"})
	})

	for _, in := range scriptProducts() {
		add("create product "+in.Name, func(ctx context.Context, s storage.Storage) (any, error) {
			return s.CreateProduct(ctx, in)
		})
	}

	add("products by category 1", func(ctx context.Context, s storage.Storage) (any, error) {
		return s.ListProductsByCategory(ctx, 1)
	})
	add("update product price", func(ctx context.Context, s storage.Storage) (any, error) {
		p, ok, err := s.UpdateProduct(ctx, 2, domain.ProductPatch{Price: domain.Ptr(310.0), Rating: domain.Ptr(4.5)})
		return found[domain.Product]{p, ok}, err
	})
	add("review count at int32 max", func(ctx context.Context, s storage.Storage) (any, error) {
		patch := domain.ProductPatch{ReviewCount: domain.Ptr(math.MaxInt32)}
		return validated(patch, func() (any, error) {
			p, ok, err := s.UpdateProduct(ctx, 2, patch)
			return found[domain.Product]{p, ok}, err
		})
	})
	add("review count above int32", func(ctx context.Context, s storage.Storage) (any, error) {
		patch := domain.ProductPatch{ReviewCount: domain.Ptr(math.MaxInt32 + 1)}
		return validated(patch, func() (any, error) {
			p, ok, err := s.UpdateProduct(ctx, 2, patch)
			return found[domain.Product]{p, ok}, err
		})
	})
	add("update missing product", func(ctx context.Context, s storage.Storage) (any, error) {
		p, ok, err := s.UpdateProduct(ctx, 999, domain.ProductPatch{Price: domain.Ptr(1.0)})
		return found[domain.Product]{p, ok}, err
	})
	add("delete product 1", func(ctx context.Context, s storage.Storage) (any, error) {
		return s.DeleteProduct(ctx, 1)
	})
	add("delete product 1 again", func(ctx context.Context, s storage.Storage) (any, error) {
		return s.DeleteProduct(ctx, 1)
	})
	add("get deleted product", func(ctx context.Context, s storage.Storage) (any, error) {
		p, ok, err := s.GetProduct(ctx, 1)
		return found[domain.Product]{p, ok}, err
	})
	add("create after delete", func(ctx context.Context, s storage.Storage) (any, error) {
		return s.CreateProduct(ctx, domain.ProductInput{Name: "Aretes de Mariposa", Price: domain.Ptr(280.0), CategoryID: 3})
	})
	add("get product with max id", func(ctx context.Context, s storage.Storage) (any, error) {
		p, ok, err := s.GetProduct(ctx, math.MaxInt64)
		return found[domain.Product]{p, ok}, err
	})
	add("list products", func(ctx context.Context, s storage.Storage) (any, error) {
		return s.ListProducts(ctx)
	})
	add("rename category", func(ctx context.Context, s storage.Storage) (any, error) {
		c, ok, err := s.UpdateCategory(ctx, 3, domain.CategoryPatch{Name: domain.Ptr("Aretes"), ImageURL: domain.Ptr("/a.png")})
		return found[domain.Category]{c, ok}, err
	})
	add("change only slug", func(ctx context.Context, s storage.Storage) (any, error) {
		c, ok, err := s.UpdateCategory(ctx, 1, domain.CategoryPatch{Slug: domain.Ptr("pulseras-finas")})
		return found[domain.Category]{c, ok}, err
	})
	add("change slug to a taken one", func(ctx context.Context, s storage.Storage) (any, error) {
		c, ok, err := s.UpdateCategory(ctx, 1, domain.CategoryPatch{Slug: domain.Ptr("collares")})
		return found[domain.Category]{c, ok}, err
	})
	add("category by slug", func(ctx context.Context, s storage.Storage) (any, error) {
		c, ok, err := s.GetCategoryBySlug(ctx, "aretes")
		return found[domain.Category]{c, ok}, err
	})
	add("previous slug is free", func(ctx context.Context, s storage.Storage) (any, error) {
		c, ok, err := s.GetCategoryBySlug(ctx, "pulseras")
		return found[domain.Category]{c, ok}, err
	})
	add("nul in category name", func(ctx context.Context, s storage.Storage) (any, error) {
		in := domain.CategoryInput{Name: "a\x00b", Slug: "nul"}
		return validated(in, func() (any, error) { return s.CreateCategory(ctx, in) })
	})
	add("category with max length fields", func(ctx context.Context, s storage.Storage) (any, error) {
		in := longCategory()
		return validated(in, func() (any, error) { return s.CreateCategory(ctx, in) })
	})
	add("delete category 2", func(ctx context.Context, s storage.Storage) (any, error) {
		return s.DeleteCategory(ctx, 2)
	})
	add("list categories", func(ctx context.Context, s storage.Storage) (any, error) {
		return s.ListCategories(ctx)
	})
	add("orphaned products survive", func(ctx context.Context, s storage.Storage) (any, error) {
		return s.ListProductsByCategory(ctx, 2)
	})
	add("products by max category id", func(ctx context.Context, s storage.Storage) (any, error) {
		return s.ListProductsByCategory(ctx, math.MaxInt64)
	})
	add("create testimonial", func(ctx context.Context, s storage.Storage) (any, error) {
		return s.CreateTestimonial(ctx, domain.TestimonialInput{CustomerName: "Ana", Comment: "Hermoso", Rating: 5})
	})
	add("list testimonials", func(ctx context.Context, s storage.Storage) (any, error) {
		return s.ListTestimonials(ctx)
	})
	add("contact message", func(ctx context.Context, s storage.Storage) (any, error) {
		return s.CreateContactMessage(ctx, scriptContactMessage())
	})
	add("create user", func(ctx context.Context, s storage.Storage) (any, error) {
		return s.CreateUser(ctx, domain.UserInput{Username: "admin", Password: "hash"})
	})
	add("user by username", func(ctx context.Context, s storage.Storage) (any, error) {
		u, ok, err := s.GetUserByUsername(ctx, "admin")
		return found[domain.User]{u, ok}, err
	})
	add("duplicate user", func(ctx context.Context, s storage.Storage) (any, error) {
		return s.CreateUser(ctx, domain.UserInput{Username: "admin", Password: "x"})
	})

	return steps
}

func scriptProducts() []domain.ProductInput {
	return []domain.ProductInput{
		{Name: "Pulsera de Corazones", Price: domain.Ptr(320.0), CategoryID: 1, Description: domain.Ptr("roja")},
		{Name: "Pulsera Azul", Price: domain.Ptr(300.0), CategoryID: 1},
		{Name: "Collar Flor de Loto", Price: domain.Ptr(450.0), CategoryID: 2, ImageURL: domain.Ptr("/c.svg")},
		{Name: "Anillo Dorado", Price: domain.Ptr(220.0), CategoryID: 99},
	}
}

// longCategory использует многобайтовые символы: длина считается в рунах.
func longCategory() domain.CategoryInput {
	return domain.CategoryInput{
		Name: strings.Repeat("ñ", 120),
		Slug: strings.Repeat("a", 120),
	}
}

func scriptContactMessage() domain.ContactMessageInput {
	return domain.ContactMessageInput{
		Name: "Ana", Email: "ana@example.com", Subject: "Hola", Message: "Quiero un pedido grande",
	}
}
