package pgdb

import (
	"context"

	"github.com/DRSN-tech/catalog/internal/domain"
	"github.com/DRSN-tech/catalog/internal/repository/pgdb/converter"
	"github.com/jimlawless/whereami"
)

// CreateContactMessage сохраняет обращение. Обращения только добавляются.
func (s *Store) CreateContactMessage(ctx context.Context, in domain.ContactMessageInput) (domain.ContactMessage, error) {
	query := `
		INSERT INTO contact_messages (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, subject, message, created_at`

	model, _, err := queryOne[converter.ContactMessageModel](ctx, s.q(ctx), query,
		in.Name, in.Email, in.Subject, in.Message)
	if err != nil {
		return domain.ContactMessage{}, wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ContactMessageToEntity(model), nil
}
