package domain

// User — учётная запись. В сценариях каталога не используется.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

type UserInput struct {
	Username string `json:"username" validate:"required,notblank,text,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func NewUser(id int64, in UserInput) User {
	return User{
		ID:       id,
		Username: in.Username,
		Password: in.Password,
	}
}
