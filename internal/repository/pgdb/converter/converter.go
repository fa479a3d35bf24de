//go:generate goverter gen github.com/DRSN-tech/catalog/internal/repository/pgdb/converter

// Package converter преобразует строки PostgreSQL в сущности domain.
package converter

import (
	"time"

	"github.com/DRSN-tech/catalog/internal/domain"
)

// RowConverter преобразует модели PostgreSQL в сущности domain.
// goverter:converter
// goverter:extend ConvertTime
type RowConverter interface {
	CategoryToEntity(m CategoryModel) domain.Category
	ProductToEntity(m ProductModel) domain.Product
	TestimonialToEntity(m TestimonialModel) domain.Testimonial
	ContactMessageToEntity(m ContactMessageModel) domain.ContactMessage
	UserToEntity(m UserModel) domain.User
}

// Rows — написанная вручную реализация RowConverter.
type Rows struct{}

var _ RowConverter = Rows{}

// ConvertTime приводит время из базы к UTC, в котором его отдаёт хранилище в памяти.
func ConvertTime(t time.Time) time.Time {
	return t.UTC()
}

func (Rows) CategoryToEntity(m CategoryModel) domain.Category {
	return domain.Category{
		ID:       m.ID,
		Name:     m.Name,
		Slug:     m.Slug,
		ImageURL: m.ImageURL,
	}
}

func (Rows) ProductToEntity(m ProductModel) domain.Product {
	return domain.Product{
		ID:          m.ID,
		Name:        m.Name,
		Price:       m.Price,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		CategoryID:  m.CategoryID,
		Rating:      m.Rating,
		ReviewCount: m.ReviewCount,
		CreatedAt:   ConvertTime(m.CreatedAt),
	}
}

func (Rows) TestimonialToEntity(m TestimonialModel) domain.Testimonial {
	return domain.Testimonial{
		ID:            m.ID,
		CustomerName:  m.CustomerName,
		CustomerImage: m.CustomerImage,
		Comment:       m.Comment,
		Rating:        m.Rating,
		CustomerSince: m.CustomerSince,
		CreatedAt:     ConvertTime(m.CreatedAt),
	}
}

func (Rows) ContactMessageToEntity(m ContactMessageModel) domain.ContactMessage {
	return domain.ContactMessage{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		CreatedAt: ConvertTime(m.CreatedAt),
	}
}

func (Rows) UserToEntity(m UserModel) domain.User {
	return domain.User{
		ID:       m.ID,
		Username: m.Username,
		Password: m.Password,
	}
}

// ToEntities применяет conv к каждой модели. Для пустого входа возвращает пустой, а не nil срез.
func ToEntities[M, E any](models []M, conv func(M) E) []E {
	out := make([]E, 0, len(models))
	for _, m := range models {
		out = append(out, conv(m))
	}
	return out
}
