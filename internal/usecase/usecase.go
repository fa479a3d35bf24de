package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog/internal/domain"
)

// CatalogUC — операции каталога, доступные транспортному слою.
// Отсутствие записи возвращается как e.ErrNotFound.
type CatalogUC interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (domain.Category, error)
	CreateCategory(ctx context.Context, in domain.CategoryInput) (domain.Category, error)
	UpdateCategory(ctx context.Context, id int64, patch domain.CategoryPatch) (domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (domain.Product, error)
	ListProductsByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error)
	CreateProduct(ctx context.Context, in domain.ProductInput) (domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, patch domain.ProductPatch) (domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	ListTestimonials(ctx context.Context) ([]domain.Testimonial, error)
	CreateTestimonial(ctx context.Context, in domain.TestimonialInput) (domain.Testimonial, error)

	SubmitContactMessage(ctx context.Context, in domain.ContactMessageInput) (domain.ContactMessage, error)

	RegisterUser(ctx context.Context, in domain.UserInput) (domain.User, error)
	GetUser(ctx context.Context, id int64) (domain.User, error)

	Health(ctx context.Context) HealthStatus
}
