package pgdb

import (
	"context"

	"github.com/DRSN-tech/catalog/internal/repository/seed"
	"github.com/DRSN-tech/catalog/pkg/e"
	"github.com/DRSN-tech/catalog/pkg/tr"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jimlawless/whereami"
)

// Seed заполняет пустую базу каноническим набором в одной транзакции.
// Признак пустой базы — отсутствие отзывов. Возвращает true, если набор был вставлен.
//
// Проверка и вставка не атомарны относительно других процессов: два экземпляра,
// стартующие одновременно, могут оба увидеть пустую таблицу. Категории защищены
// уникальным слагом, товары и отзывы в этом случае задвоятся.
func (s *Store) Seed(ctx context.Context) (seeded bool, err error) {
	const op = "Store.Seed"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, s.pool)
	if err != nil {
		return false, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Warnf("seed rollback failed: %v", e.Wrap(op, rbErr))
			}
		}
	}()
	pgxTx, ok := any(tx.Transaction()).(pgx.Tx)
	if !ok {
		err = e.ErrTransactionNotFound
		return false, e.Wrap(op, err)
	}
	ctx = tr.WithTx(ctx, pgxTx)

	n, err := s.countTestimonials(ctx)
	if err != nil {
		return false, e.Wrap(op, err)
	}
	if n > 0 {
		s.logger.Debugf("seed skipped: %d testimonials already present", n)
		if err = tx.Commit(ctx); err != nil {
			return false, e.Wrap(op, err)
		}
		return false, nil
	}

	if err = s.insertSeed(ctx, seed.Canonical()); err != nil {
		return false, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return false, e.Wrap(op, err)
	}

	s.logger.Infof("catalog seeded with the initial data set")
	return true, nil
}

func (s *Store) insertSeed(ctx context.Context, set seed.Set) error {
	q := s.q(ctx)

	for _, c := range set.Categories {
		_, err := q.Exec(ctx, `
			INSERT INTO categories (name, slug, image_url)
			VALUES ($1, $2, $3)
			ON CONFLICT (slug) DO NOTHING`,
			c.Name, c.Slug, c.ImageURL)
		if err != nil {
			return wrap(whereami.WhereAmI(), err)
		}
	}

	for _, p := range set.Products {
		_, err := q.Exec(ctx, `
			INSERT INTO products (name, description, price, image_url, category_id, rating, review_count)
			SELECT $1::text, $2::text, $3::double precision, $4::text, c.id, $6::double precision, $7::integer
			FROM categories c
			WHERE c.slug = $5`,
			p.Name, p.Description, p.Price, p.ImageURL, p.CategorySlug, p.Rating, p.ReviewCount)
		if err != nil {
			return wrap(whereami.WhereAmI(), err)
		}
	}

	for _, t := range set.Testimonials {
		_, err := q.Exec(ctx, `
			INSERT INTO testimonials (customer_name, customer_image, comment, rating, customer_since)
			VALUES ($1, $2, $3, $4, $5)`,
			t.CustomerName, t.CustomerImage, t.Comment, t.Rating, t.CustomerSince)
		if err != nil {
			return wrap(whereami.WhereAmI(), err)
		}
	}

	return nil
}

// Reset очищает все таблицы и сбрасывает последовательности идентификаторов.
// Используется тестами, которым нужна пустая база с id, начинающимися с 1.
func (s *Store) Reset(ctx context.Context) error {
	_, err := s.q(ctx).Exec(ctx,
		"TRUNCATE users, categories, products, testimonials, contact_messages RESTART IDENTITY")
	if err != nil {
		return wrap(whereami.WhereAmI(), err)
	}
	return nil
}
