// Package pgdb реализует хранилище каталога поверх PostgreSQL.
package pgdb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DRSN-tech/catalog/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/catalog/pkg/e"
	"github.com/DRSN-tech/catalog/pkg/logger"
	"github.com/DRSN-tech/catalog/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

const uniqueViolation = "23505"

// Store реализует storage.Storage поверх пула соединений pgx.
// Если в контексте есть транзакция (см. pkg/tr), запросы выполняются в ней.
type Store struct {
	pool   *pgxpool.Pool
	conv   converter.RowConverter
	logger logger.Logger
}

func NewStore(pool *pgxpool.Pool, conv converter.RowConverter, logger logger.Logger) *Store {
	return &Store{pool: pool, conv: conv, logger: logger}
}

func (s *Store) q(ctx context.Context) tr.Querier {
	return tr.QuerierFromCtx(ctx, s.pool)
}

// queryOne выполняет запрос и собирает единственную строку в модель M.
// Отсутствие строки возвращается как found == false.
func queryOne[M any](ctx context.Context, q tr.Querier, query string, args ...any) (M, bool, error) {
	var zero M

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return zero, false, err
	}

	model, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[M])
	if errors.Is(err, pgx.ErrNoRows) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
	}

	return model, true, nil
}

func queryAll[M any](ctx context.Context, q tr.Querier, query string, args ...any) ([]M, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToStructByName[M])
}

// deleteByID удаляет строку и сообщает, была ли она удалена.
func (s *Store) deleteByID(ctx context.Context, table string, id int64) (bool, error) {
	tag, err := s.q(ctx).Exec(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return false, wrap(whereami.WhereAmI(), err)
	}
	return tag.RowsAffected() > 0, nil
}

// postgresDuplicate сообщает о нарушении уникального ограничения.
func postgresDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// wrap оборачивает ошибку драйвера, приводя нарушение уникальности к e.ErrConflict.
func wrap(where string, err error) error {
	if postgresDuplicate(err) {
		err = errors.Join(e.ErrConflict, err)
	}
	return e.Wrap(where, err)
}

// setClause собирает SET-часть частичного обновления только из присутствующих полей.
type setClause struct {
	cols []string
	args []any
}

func (c *setClause) add(col string, value any) {
	c.args = append(c.args, value)
	c.cols = append(c.cols, fmt.Sprintf("%s = $%d", col, len(c.args)))
}

// build возвращает запрос UPDATE ... RETURNING и его аргументы, последним из которых идёт id.
func (c *setClause) build(table string, id int64, returning string) (string, []any) {
	args := append(c.args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(c.cols, ", "), len(args), returning)
	return query, args
}
