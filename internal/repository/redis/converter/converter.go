//go:generate goverter gen github.com/DRSN-tech/catalog/internal/repository/redis/converter

package converter

import (
	"github.com/DRSN-tech/catalog/internal/domain"
)

// goverter:converter
type ProductConverter interface {
	ToRedisModel(p domain.Product) ProductRedisModel
	ToEntity(m ProductRedisModel) domain.Product
}

// Products — написанная вручную реализация ProductConverter.
type Products struct{}

var _ ProductConverter = Products{}

func (Products) ToRedisModel(p domain.Product) ProductRedisModel {
	return ProductRedisModel{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: domain.CloneString(p.Description),
		ImageURL:    domain.CloneString(p.ImageURL),
		CategoryID:  p.CategoryID,
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
		CreatedAt:   p.CreatedAt,
	}
}

// ToEntity восстанавливает товар. Время приводится к UTC, как его отдают хранилища.
func (Products) ToEntity(m ProductRedisModel) domain.Product {
	return domain.Product{
		ID:          m.ID,
		Name:        m.Name,
		Price:       m.Price,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		CategoryID:  m.CategoryID,
		Rating:      m.Rating,
		ReviewCount: m.ReviewCount,
		CreatedAt:   m.CreatedAt.UTC(),
	}
}
