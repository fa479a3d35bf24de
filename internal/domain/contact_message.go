package domain

import "time"

// MinContactMessageLength — минимальная длина текста обращения.
const MinContactMessageLength = 10

// ContactMessage — обращение из формы обратной связи. Создаётся один раз и не меняется.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type ContactMessageInput struct {
	Name    string `json:"name" validate:"required,notblank,text,max=120"`
	Email   string `json:"email" validate:"required,email,text,max=254"`
	Subject string `json:"subject" validate:"required,notblank,text,max=200"`
	Message string `json:"message" validate:"required,text,min=10,max=5000"`
}

func NewContactMessage(id int64, in ContactMessageInput, createdAt time.Time) ContactMessage {
	return ContactMessage{
		ID:        id,
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: createdAt,
	}
}
