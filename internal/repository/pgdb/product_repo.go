package pgdb

import (
	"context"

	"github.com/DRSN-tech/catalog/internal/domain"
	"github.com/DRSN-tech/catalog/internal/repository/pgdb/converter"
	"github.com/jimlawless/whereami"
)

const productColumns = "id, name, price, description, image_url, category_id, rating, review_count, created_at"

func (s *Store) ListProducts(ctx context.Context) ([]domain.Product, error) {
	models, err := queryAll[converter.ProductModel](ctx, s.q(ctx),
		"SELECT "+productColumns+" FROM products ORDER BY id")
	if err != nil {
		return nil, wrap(whereami.WhereAmI(), err)
	}

	return converter.ToEntities(models, s.conv.ProductToEntity), nil
}

func (s *Store) GetProduct(ctx context.Context, id int64) (domain.Product, bool, error) {
	model, found, err := queryOne[converter.ProductModel](ctx, s.q(ctx),
		"SELECT "+productColumns+" FROM products WHERE id = $1", id)
	if err != nil {
		return domain.Product{}, false, wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ProductToEntity(model), found, nil
}

func (s *Store) ListProductsByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	models, err := queryAll[converter.ProductModel](ctx, s.q(ctx),
		"SELECT "+productColumns+" FROM products WHERE category_id = $1 ORDER BY id", categoryID)
	if err != nil {
		return nil, wrap(whereami.WhereAmI(), err)
	}

	return converter.ToEntities(models, s.conv.ProductToEntity), nil
}

// CreateProduct вставляет товар. rating, review_count и created_at заполняются значениями по умолчанию.
func (s *Store) CreateProduct(ctx context.Context, in domain.ProductInput) (domain.Product, error) {
	query := `
		INSERT INTO products (name, price, description, image_url, category_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + productColumns

	model, _, err := queryOne[converter.ProductModel](ctx, s.q(ctx), query,
		in.Name, domain.Deref(in.Price), in.Description, in.ImageURL, in.CategoryID)
	if err != nil {
		return domain.Product{}, wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ProductToEntity(model), nil
}

// UpdateProduct обновляет только присутствующие в патче поля. created_at не меняется никогда.
func (s *Store) UpdateProduct(ctx context.Context, id int64, patch domain.ProductPatch) (domain.Product, bool, error) {
	if patch.IsEmpty() {
		return s.GetProduct(ctx, id)
	}

	var set setClause
	if patch.Name != nil {
		set.add("name", *patch.Name)
	}
	if patch.Price != nil {
		set.add("price", *patch.Price)
	}
	if patch.Description != nil {
		set.add("description", *patch.Description)
	}
	if patch.ImageURL != nil {
		set.add("image_url", *patch.ImageURL)
	}
	if patch.CategoryID != nil {
		set.add("category_id", *patch.CategoryID)
	}
	if patch.Rating != nil {
		set.add("rating", *patch.Rating)
	}
	if patch.ReviewCount != nil {
		set.add("review_count", *patch.ReviewCount)
	}

	query, args := set.build("products", id, productColumns)
	model, found, err := queryOne[converter.ProductModel](ctx, s.q(ctx), query, args...)
	if err != nil {
		return domain.Product{}, false, wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ProductToEntity(model), found, nil
}

func (s *Store) DeleteProduct(ctx context.Context, id int64) (bool, error) {
	return s.deleteByID(ctx, "products", id)
}
