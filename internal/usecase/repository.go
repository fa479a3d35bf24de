package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog/internal/domain"
)

// CacheRepository — кэш товаров. Ошибки кэша не должны ломать чтение из хранилища.
type CacheRepository interface {
	GetProduct(ctx context.Context, id int64) (domain.Product, bool, error)
	SetProducts(ctx context.Context, products []domain.Product) error
	DeleteProducts(ctx context.Context, ids []int64) error
}

// noCache используется, когда Redis не настроен.
type noCache struct{}

func (noCache) GetProduct(context.Context, int64) (domain.Product, bool, error) {
	return domain.Product{}, false, nil
}

func (noCache) SetProducts(context.Context, []domain.Product) error { return nil }

func (noCache) DeleteProducts(context.Context, []int64) error { return nil }
