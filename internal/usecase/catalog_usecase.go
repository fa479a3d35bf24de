package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog/internal/domain"
	"github.com/DRSN-tech/catalog/internal/storage"
	"github.com/DRSN-tech/catalog/pkg/e"
	"github.com/DRSN-tech/catalog/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// CatalogUseCase проверяет входные данные и делегирует работу выбранному хранилищу.
type CatalogUseCase struct {
	provider *storage.Provider
	store    storage.Storage
	cache    CacheRepository
	logger   logger.Logger
}

var _ CatalogUC = (*CatalogUseCase)(nil)

// NewCatalogUC создаёт use case поверх выбранного хранилища. cache может быть nil.
func NewCatalogUC(provider *storage.Provider, cache CacheRepository, logger logger.Logger) *CatalogUseCase {
	if cache == nil {
		cache = noCache{}
	}

	return &CatalogUseCase{
		provider: provider,
		store:    provider.Storage,
		cache:    cache,
		logger:   logger,
	}
}

// CATEGORIES

func (c *CatalogUseCase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "CatalogUseCase.ListCategories"

	categories, err := c.store.ListCategories(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return categories, nil
}

func (c *CatalogUseCase) GetCategoryBySlug(ctx context.Context, slug string) (domain.Category, error) {
	const op = "CatalogUseCase.GetCategoryBySlug"

	category, found, err := c.store.GetCategoryBySlug(ctx, slug)
	if err != nil {
		return domain.Category{}, e.Wrap(op, err)
	}
	if !found {
		return domain.Category{}, e.Wrap(op, e.ErrNotFound)
	}
	return category, nil
}

func (c *CatalogUseCase) CreateCategory(ctx context.Context, in domain.CategoryInput) (domain.Category, error) {
	const op = "CatalogUseCase.CreateCategory"

	if err := domain.Validate(in); err != nil {
		return domain.Category{}, e.Wrap(op, err)
	}

	category, err := c.store.CreateCategory(ctx, in)
	if err != nil {
		return domain.Category{}, e.Wrap(op, err)
	}
	return category, nil
}

func (c *CatalogUseCase) UpdateCategory(ctx context.Context, id int64, patch domain.CategoryPatch) (domain.Category, error) {
	const op = "CatalogUseCase.UpdateCategory"

	if err := domain.Validate(patch); err != nil {
		return domain.Category{}, e.Wrap(op, err)
	}

	category, found, err := c.store.UpdateCategory(ctx, id, patch)
	if err != nil {
		return domain.Category{}, e.Wrap(op, err)
	}
	if !found {
		return domain.Category{}, e.Wrap(op, e.ErrNotFound)
	}
	return category, nil
}

// DeleteCategory удаляет категорию. Товары категории не удаляются.
func (c *CatalogUseCase) DeleteCategory(ctx context.Context, id int64) error {
	const op = "CatalogUseCase.DeleteCategory"

	deleted, err := c.store.DeleteCategory(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}
	if !deleted {
		return e.Wrap(op, e.ErrNotFound)
	}
	return nil
}

// PRODUCTS

func (c *CatalogUseCase) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "CatalogUseCase.ListProducts"

	products, err := c.store.ListProducts(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return products, nil
}

// GetProduct читает товар сначала из кэша, при промахе из хранилища, и кладёт найденное в кэш.
// Запись в кэш после параллельного UpdateProduct может вернуть туда прежнюю версию,
// она живёт не дольше PRODUCT_TTL.
func (c *CatalogUseCase) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	const op = "CatalogUseCase.GetProduct"

	cached, hit, err := c.cache.GetProduct(ctx, id)
	if err != nil {
		c.logger.Warnf("product cache read failed, using storage: %v", e.Wrap(op, err))
	}
	if hit {
		return cached, nil
	}

	product, found, err := c.store.GetProduct(ctx, id)
	if err != nil {
		return domain.Product{}, e.Wrap(op, err)
	}
	if !found {
		return domain.Product{}, e.Wrap(op, e.ErrNotFound)
	}

	if err := c.cache.SetProducts(ctx, []domain.Product{product}); err != nil {
		c.logger.Warnf("Failed to cache product: %v", e.Wrap(op, err))
	}

	return product, nil
}

func (c *CatalogUseCase) ListProductsByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	const op = "CatalogUseCase.ListProductsByCategory"

	products, err := c.store.ListProductsByCategory(ctx, categoryID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return products, nil
}

// CreateProduct создаёт товар. Существование категории не проверяется.
func (c *CatalogUseCase) CreateProduct(ctx context.Context, in domain.ProductInput) (domain.Product, error) {
	const op = "CatalogUseCase.CreateProduct"

	if err := domain.Validate(in); err != nil {
		return domain.Product{}, e.Wrap(op, err)
	}

	product, err := c.store.CreateProduct(ctx, in)
	if err != nil {
		return domain.Product{}, e.Wrap(op, err)
	}
	return product, nil
}

func (c *CatalogUseCase) UpdateProduct(ctx context.Context, id int64, patch domain.ProductPatch) (domain.Product, error) {
	const op = "CatalogUseCase.UpdateProduct"

	if err := domain.Validate(patch); err != nil {
		return domain.Product{}, e.Wrap(op, err)
	}

	product, found, err := c.store.UpdateProduct(ctx, id, patch)
	if err != nil {
		return domain.Product{}, e.Wrap(op, err)
	}
	if !found {
		return domain.Product{}, e.Wrap(op, e.ErrNotFound)
	}

	c.invalidate(ctx, op, id)
	return product, nil
}

func (c *CatalogUseCase) DeleteProduct(ctx context.Context, id int64) error {
	const op = "CatalogUseCase.DeleteProduct"

	deleted, err := c.store.DeleteProduct(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}
	if !deleted {
		return e.Wrap(op, e.ErrNotFound)
	}

	c.invalidate(ctx, op, id)
	return nil
}

// invalidate удаляет устаревшую версию товара из кэша
func (c *CatalogUseCase) invalidate(ctx context.Context, op string, id int64) {
	if err := c.cache.DeleteProducts(ctx, []int64{id}); err != nil {
		c.logger.Warnf("Failed to delete products: %v", e.Wrap(op, err))
	}
}

// TESTIMONIALS

func (c *CatalogUseCase) ListTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	const op = "CatalogUseCase.ListTestimonials"

	testimonials, err := c.store.ListTestimonials(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return testimonials, nil
}

func (c *CatalogUseCase) CreateTestimonial(ctx context.Context, in domain.TestimonialInput) (domain.Testimonial, error) {
	const op = "CatalogUseCase.CreateTestimonial"

	if err := domain.Validate(in); err != nil {
		return domain.Testimonial{}, e.Wrap(op, err)
	}

	testimonial, err := c.store.CreateTestimonial(ctx, in)
	if err != nil {
		return domain.Testimonial{}, e.Wrap(op, err)
	}
	return testimonial, nil
}

// CONTACT MESSAGES

func (c *CatalogUseCase) SubmitContactMessage(ctx context.Context, in domain.ContactMessageInput) (domain.ContactMessage, error) {
	const op = "CatalogUseCase.SubmitContactMessage"

	if err := domain.Validate(in); err != nil {
		return domain.ContactMessage{}, e.Wrap(op, err)
	}

	msg, err := c.store.CreateContactMessage(ctx, in)
	if err != nil {
		return domain.ContactMessage{}, e.Wrap(op, err)
	}

	c.logger.Infof("contact message %d received", msg.ID)
	return msg, nil
}

// USERS

// RegisterUser сохраняет пользователя с bcrypt-хешем вместо пароля.
func (c *CatalogUseCase) RegisterUser(ctx context.Context, in domain.UserInput) (domain.User, error) {
	const op = "CatalogUseCase.RegisterUser"

	if err := domain.Validate(in); err != nil {
		return domain.User{}, e.Wrap(op, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, e.Wrap(op, err)
	}
	in.Password = string(hash)

	user, err := c.store.CreateUser(ctx, in)
	if err != nil {
		return domain.User{}, e.Wrap(op, err)
	}
	return user, nil
}

func (c *CatalogUseCase) GetUser(ctx context.Context, id int64) (domain.User, error) {
	const op = "CatalogUseCase.GetUser"

	user, found, err := c.store.GetUser(ctx, id)
	if err != nil {
		return domain.User{}, e.Wrap(op, err)
	}
	if !found {
		return domain.User{}, e.Wrap(op, e.ErrNotFound)
	}
	return user, nil
}

// HEALTH

func (c *CatalogUseCase) Health(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Storage:  string(c.provider.Kind),
		Fallback: c.provider.Fallback,
		Status:   StatusOK,
	}

	if err := c.provider.Ping(ctx); err != nil {
		c.logger.Warnf("storage ping failed: %v", err)
		status.Status = StatusUnavailable
	}

	return status
}
