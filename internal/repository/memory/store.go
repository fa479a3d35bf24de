// Package memory реализует хранилище каталога поверх структур в памяти процесса.
//
// Состояние не переживает перезапуск: при каждом холодном старте (в том числе
// в serverless-окружении) каталог возвращается к начальному набору.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/DRSN-tech/catalog/internal/domain"
	"github.com/DRSN-tech/catalog/internal/repository/seed"
	"github.com/DRSN-tech/catalog/pkg/e"
	"github.com/jimlawless/whereami"
)

// Store реализует storage.Storage в памяти.
type Store struct {
	mu sync.RWMutex

	categories      *arena[domain.Category]
	products        *arena[domain.Product]
	testimonials    *arena[domain.Testimonial]
	contactMessages *arena[domain.ContactMessage]
	users           *arena[domain.User]

	clock  func() time.Time
	seeded bool
}

type Option func(*Store)

// WithClock подменяет источник времени для createdAt.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		s.clock = clock
	}
}

// WithoutSeed создаёт пустое хранилище без начального набора.
func WithoutSeed() Option {
	return func(s *Store) {
		s.seeded = false
	}
}

// New создаёт хранилище и синхронно заполняет его начальным набором.
func New(opts ...Option) *Store {
	s := &Store{
		categories:      newArena(domain.Category.Clone),
		products:        newArena(domain.Product.Clone),
		testimonials:    newArena(domain.Testimonial.Clone),
		contactMessages: newArena(func(m domain.ContactMessage) domain.ContactMessage { return m }),
		users:           newArena(func(u domain.User) domain.User { return u }),
		clock:           time.Now,
		seeded:          true,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.seeded {
		s.applySeed(seed.Canonical())
	}

	return s
}

// applySeed вставляет начальный набор напрямую, минуя публичные методы,
// чтобы сохранить рейтинги и количество отзывов товаров.
func (s *Store) applySeed(set seed.Set) {
	slugToID := make(map[string]int64, len(set.Categories))
	for _, in := range set.Categories {
		c := s.categories.insert(func(id int64) domain.Category { return domain.NewCategory(id, in) })
		slugToID[c.Slug] = c.ID
	}

	for _, sp := range set.Products {
		in := domain.ProductInput{
			Name:        sp.Name,
			Price:       domain.Ptr(sp.Price),
			Description: domain.Ptr(sp.Description),
			ImageURL:    domain.Ptr(sp.ImageURL),
			CategoryID:  slugToID[sp.CategorySlug],
		}
		s.products.insert(func(id int64) domain.Product {
			p := domain.NewProduct(id, in, s.now())
			p.Rating = sp.Rating
			p.ReviewCount = sp.ReviewCount
			return p
		})
	}

	for _, in := range set.Testimonials {
		s.testimonials.insert(func(id int64) domain.Testimonial { return domain.NewTestimonial(id, in, s.now()) })
	}
}

// now возвращает время с точностью до микросекунд, как его хранит PostgreSQL.
func (s *Store) now() time.Time {
	return s.clock().UTC().Truncate(time.Microsecond)
}

// CATEGORIES

func (s *Store) ListCategories(_ context.Context) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.categories.find(nil), nil
}

func (s *Store) GetCategoryBySlug(_ context.Context, slug string) (domain.Category, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories.first(func(c domain.Category) bool { return c.Slug == slug })
	return c, ok, nil
}

func (s *Store) CreateCategory(_ context.Context, in domain.CategoryInput) (domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.slugTaken(in.Slug, 0) {
		return domain.Category{}, e.Wrap(whereami.WhereAmI(), e.ErrConflict)
	}

	return s.categories.insert(func(id int64) domain.Category { return domain.NewCategory(id, in) }), nil
}

func (s *Store) UpdateCategory(_ context.Context, id int64, patch domain.CategoryPatch) (domain.Category, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories.slot(id); !ok {
		return domain.Category{}, false, nil
	}

	if patch.Slug != nil && s.slugTaken(*patch.Slug, id) {
		return domain.Category{}, false, e.Wrap(whereami.WhereAmI(), e.ErrConflict)
	}

	c, ok := s.categories.update(id, patch.Apply)
	return c, ok, nil
}

func (s *Store) DeleteCategory(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.categories.delete(id), nil
}

// slugTaken сообщает, занят ли слаг категорией, отличной от exceptID.
func (s *Store) slugTaken(slug string, exceptID int64) bool {
	_, taken := s.categories.first(func(c domain.Category) bool {
		return c.Slug == slug && c.ID != exceptID
	})
	return taken
}

// PRODUCTS

func (s *Store) ListProducts(_ context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.products.find(nil), nil
}

func (s *Store) GetProduct(_ context.Context, id int64) (domain.Product, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products.get(id)
	return p, ok, nil
}

func (s *Store) ListProductsByCategory(_ context.Context, categoryID int64) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.products.find(func(p domain.Product) bool { return p.CategoryID == categoryID }), nil
}

func (s *Store) CreateProduct(_ context.Context, in domain.ProductInput) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	createdAt := s.now()
	return s.products.insert(func(id int64) domain.Product { return domain.NewProduct(id, in, createdAt) }), nil
}

func (s *Store) UpdateProduct(_ context.Context, id int64, patch domain.ProductPatch) (domain.Product, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products.update(id, patch.Apply)
	return p, ok, nil
}

func (s *Store) DeleteProduct(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.products.delete(id), nil
}

// TESTIMONIALS

func (s *Store) ListTestimonials(_ context.Context) ([]domain.Testimonial, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.testimonials.find(nil), nil
}

func (s *Store) CreateTestimonial(_ context.Context, in domain.TestimonialInput) (domain.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	createdAt := s.now()
	return s.testimonials.insert(func(id int64) domain.Testimonial {
		return domain.NewTestimonial(id, in, createdAt)
	}), nil
}

// CONTACT MESSAGES

func (s *Store) CreateContactMessage(_ context.Context, in domain.ContactMessageInput) (domain.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	createdAt := s.now()
	return s.contactMessages.insert(func(id int64) domain.ContactMessage {
		return domain.NewContactMessage(id, in, createdAt)
	}), nil
}

// USERS

func (s *Store) GetUser(_ context.Context, id int64) (domain.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users.get(id)
	return u, ok, nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (domain.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users.first(func(u domain.User) bool { return u.Username == username })
	return u, ok, nil
}

func (s *Store) CreateUser(_ context.Context, in domain.UserInput) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.users.first(func(u domain.User) bool { return u.Username == in.Username }); taken {
		return domain.User{}, e.Wrap(whereami.WhereAmI(), e.ErrConflict)
	}

	return s.users.insert(func(id int64) domain.User { return domain.NewUser(id, in) }), nil
}
