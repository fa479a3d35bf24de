package pgdb

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DRSN-tech/catalog/pkg/e"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestSetClause_Build(t *testing.T) {
	var set setClause
	set.add("name", "Collar")
	set.add("price", 450.0)

	query, args := set.build("products", 7, "id, name")
	assert.Equal(t, "UPDATE products SET name = $1, price = $2 WHERE id = $3 RETURNING id, name", query)
	assert.Equal(t, []any{"Collar", 450.0, int64(7)}, args)
}

func TestWrap_UniqueViolationIsConflict(t *testing.T) {
	dup := fmt.Errorf("insert: %w", &pgconn.PgError{Code: uniqueViolation})
	assert.True(t, postgresDuplicate(dup))
	assert.ErrorIs(t, wrap("here", dup), e.ErrConflict)

	other := &pgconn.PgError{Code: "23514"}
	assert.False(t, postgresDuplicate(other))
	assert.NotErrorIs(t, wrap("here", other), e.ErrConflict)

	assert.False(t, postgresDuplicate(errors.New("boom")))
}
