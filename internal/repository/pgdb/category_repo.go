package pgdb

import (
	"context"

	"github.com/DRSN-tech/catalog/internal/domain"
	"github.com/DRSN-tech/catalog/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/catalog/pkg/e"
	"github.com/jimlawless/whereami"
)

const categoryColumns = "id, name, slug, image_url"

func (s *Store) ListCategories(ctx context.Context) ([]domain.Category, error) {
	models, err := queryAll[converter.CategoryModel](ctx, s.q(ctx),
		"SELECT "+categoryColumns+" FROM categories ORDER BY id")
	if err != nil {
		return nil, wrap(whereami.WhereAmI(), err)
	}

	return converter.ToEntities(models, s.conv.CategoryToEntity), nil
}

func (s *Store) GetCategoryBySlug(ctx context.Context, slug string) (domain.Category, bool, error) {
	model, found, err := queryOne[converter.CategoryModel](ctx, s.q(ctx),
		"SELECT "+categoryColumns+" FROM categories WHERE slug = $1", slug)
	if err != nil {
		return domain.Category{}, false, wrap(whereami.WhereAmI(), err)
	}

	return s.conv.CategoryToEntity(model), found, nil
}

func (s *Store) getCategory(ctx context.Context, id int64) (domain.Category, bool, error) {
	model, found, err := queryOne[converter.CategoryModel](ctx, s.q(ctx),
		"SELECT "+categoryColumns+" FROM categories WHERE id = $1", id)
	if err != nil {
		return domain.Category{}, false, wrap(whereami.WhereAmI(), err)
	}

	return s.conv.CategoryToEntity(model), found, nil
}

// CreateCategory вставляет категорию, если слаг свободен.
// Проверка выполняется в самом INSERT, чтобы занятый слаг не расходовал значение последовательности.
func (s *Store) CreateCategory(ctx context.Context, in domain.CategoryInput) (domain.Category, error) {
	query := `
		INSERT INTO categories (name, slug, image_url)
		SELECT $1::text, $2::text, $3::text
		WHERE NOT EXISTS (SELECT 1 FROM categories WHERE slug = $2::text)
		RETURNING ` + categoryColumns

	model, inserted, err := queryOne[converter.CategoryModel](ctx, s.q(ctx), query, in.Name, in.Slug, in.ImageURL)
	if err != nil {
		return domain.Category{}, wrap(whereami.WhereAmI(), err)
	}
	if !inserted {
		return domain.Category{}, e.Wrap(whereami.WhereAmI(), e.ErrConflict)
	}

	return s.conv.CategoryToEntity(model), nil
}

// UpdateCategory обновляет только присутствующие в патче поля.
func (s *Store) UpdateCategory(ctx context.Context, id int64, patch domain.CategoryPatch) (domain.Category, bool, error) {
	if patch.IsEmpty() {
		return s.getCategory(ctx, id)
	}

	var set setClause
	if patch.Name != nil {
		set.add("name", *patch.Name)
	}
	if patch.Slug != nil {
		set.add("slug", *patch.Slug)
	}
	if patch.ImageURL != nil {
		set.add("image_url", *patch.ImageURL)
	}

	query, args := set.build("categories", id, categoryColumns)
	model, found, err := queryOne[converter.CategoryModel](ctx, s.q(ctx), query, args...)
	if err != nil {
		return domain.Category{}, false, wrap(whereami.WhereAmI(), err)
	}

	return s.conv.CategoryToEntity(model), found, nil
}

// DeleteCategory удаляет категорию. Товары категории остаются на месте.
func (s *Store) DeleteCategory(ctx context.Context, id int64) (bool, error) {
	return s.deleteByID(ctx, "categories", id)
}
