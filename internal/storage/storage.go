// Package storage определяет единый контракт хранилища каталога и выбирает
// его реализацию при старте процесса.
//
// Контракт реализован дважды: memory.Store (состояние живёт только в памяти
// процесса и сбрасывается при перезапуске) и pgdb.Store (PostgreSQL). Обе
// реализации обязаны вести себя наблюдаемо одинаково.
//
// Отсутствие записи передаётся флагом found == false и не является ошибкой.
// Ошибка возвращается только при сбое бэкенда или конфликте уникальности
// (e.ErrConflict).
package storage

import (
	"context"

	"github.com/DRSN-tech/catalog/internal/domain"
)

// Storage — фасад хранилища, через который работают обработчики запросов.
type Storage interface {
	CategoryStorage
	ProductStorage
	TestimonialStorage
	ContactMessageStorage
	UserStorage
}

type CategoryStorage interface {
	// ListCategories возвращает все категории в порядке возрастания id.
	ListCategories(ctx context.Context) ([]domain.Category, error)
	// GetCategoryBySlug возвращает не более одной категории с указанным слагом.
	GetCategoryBySlug(ctx context.Context, slug string) (domain.Category, bool, error)
	CreateCategory(ctx context.Context, in domain.CategoryInput) (domain.Category, error)
	// UpdateCategory меняет только присутствующие в патче поля.
	UpdateCategory(ctx context.Context, id int64, patch domain.CategoryPatch) (domain.Category, bool, error)
	// DeleteCategory не затрагивает товары, ссылающиеся на категорию.
	DeleteCategory(ctx context.Context, id int64) (bool, error)
}

type ProductStorage interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (domain.Product, bool, error)
	ListProductsByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error)
	// CreateProduct назначает id, rating = 0, reviewCount = 0 и createdAt.
	// Существование категории не проверяется.
	CreateProduct(ctx context.Context, in domain.ProductInput) (domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, patch domain.ProductPatch) (domain.Product, bool, error)
	DeleteProduct(ctx context.Context, id int64) (bool, error)
}

type TestimonialStorage interface {
	ListTestimonials(ctx context.Context) ([]domain.Testimonial, error)
	CreateTestimonial(ctx context.Context, in domain.TestimonialInput) (domain.Testimonial, error)
}

// ContactMessageStorage допускает только запись: обращения не читаются и не меняются.
type ContactMessageStorage interface {
	CreateContactMessage(ctx context.Context, in domain.ContactMessageInput) (domain.ContactMessage, error)
}

type UserStorage interface {
	GetUser(ctx context.Context, id int64) (domain.User, bool, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, bool, error)
	CreateUser(ctx context.Context, in domain.UserInput) (domain.User, error)
}
