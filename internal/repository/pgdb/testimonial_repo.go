package pgdb

import (
	"context"

	"github.com/DRSN-tech/catalog/internal/domain"
	"github.com/DRSN-tech/catalog/internal/repository/pgdb/converter"
	"github.com/jimlawless/whereami"
)

const testimonialColumns = "id, customer_name, customer_image, comment, rating, customer_since, created_at"

func (s *Store) ListTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	models, err := queryAll[converter.TestimonialModel](ctx, s.q(ctx),
		"SELECT "+testimonialColumns+" FROM testimonials ORDER BY id")
	if err != nil {
		return nil, wrap(whereami.WhereAmI(), err)
	}

	return converter.ToEntities(models, s.conv.TestimonialToEntity), nil
}

func (s *Store) CreateTestimonial(ctx context.Context, in domain.TestimonialInput) (domain.Testimonial, error) {
	query := `
		INSERT INTO testimonials (customer_name, customer_image, comment, rating, customer_since)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + testimonialColumns

	model, _, err := queryOne[converter.TestimonialModel](ctx, s.q(ctx), query,
		in.CustomerName, in.CustomerImage, in.Comment, in.Rating, in.CustomerSince)
	if err != nil {
		return domain.Testimonial{}, wrap(whereami.WhereAmI(), err)
	}

	return s.conv.TestimonialToEntity(model), nil
}

// countTestimonials используется при заполнении начальным набором.
func (s *Store) countTestimonials(ctx context.Context) (int64, error) {
	var n int64
	if err := s.q(ctx).QueryRow(ctx, "SELECT COUNT(*) FROM testimonials").Scan(&n); err != nil {
		return 0, wrap(whereami.WhereAmI(), err)
	}
	return n, nil
}
