package pgdb

import (
	"context"

	"github.com/DRSN-tech/catalog/internal/domain"
	"github.com/DRSN-tech/catalog/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/catalog/pkg/e"
	"github.com/jimlawless/whereami"
)

const userColumns = "id, username, password"

func (s *Store) GetUser(ctx context.Context, id int64) (domain.User, bool, error) {
	model, found, err := queryOne[converter.UserModel](ctx, s.q(ctx),
		"SELECT "+userColumns+" FROM users WHERE id = $1", id)
	if err != nil {
		return domain.User{}, false, wrap(whereami.WhereAmI(), err)
	}

	return s.conv.UserToEntity(model), found, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (domain.User, bool, error) {
	model, found, err := queryOne[converter.UserModel](ctx, s.q(ctx),
		"SELECT "+userColumns+" FROM users WHERE username = $1", username)
	if err != nil {
		return domain.User{}, false, wrap(whereami.WhereAmI(), err)
	}

	return s.conv.UserToEntity(model), found, nil
}

// CreateUser вставляет пользователя, если имя свободно.
func (s *Store) CreateUser(ctx context.Context, in domain.UserInput) (domain.User, error) {
	query := `
		INSERT INTO users (username, password)
		SELECT $1::text, $2::text
		WHERE NOT EXISTS (SELECT 1 FROM users WHERE username = $1::text)
		RETURNING ` + userColumns

	model, inserted, err := queryOne[converter.UserModel](ctx, s.q(ctx), query, in.Username, in.Password)
	if err != nil {
		return domain.User{}, wrap(whereami.WhereAmI(), err)
	}
	if !inserted {
		return domain.User{}, e.Wrap(whereami.WhereAmI(), e.ErrConflict)
	}

	return s.conv.UserToEntity(model), nil
}
