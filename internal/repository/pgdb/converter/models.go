package converter

import "time"

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID       int64   `db:"id"`
	Name     string  `db:"name"`
	Slug     string  `db:"slug"`
	ImageURL *string `db:"image_url"`
}

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Price       float64   `db:"price"`
	Description *string   `db:"description"`
	ImageURL    *string   `db:"image_url"`
	CategoryID  int64     `db:"category_id"`
	Rating      float64   `db:"rating"`
	ReviewCount int       `db:"review_count"`
	CreatedAt   time.Time `db:"created_at"`
}

// TestimonialModel представляет запись таблицы testimonials в PostgreSQL.
type TestimonialModel struct {
	ID            int64     `db:"id"`
	CustomerName  string    `db:"customer_name"`
	CustomerImage *string   `db:"customer_image"`
	Comment       string    `db:"comment"`
	Rating        int       `db:"rating"`
	CustomerSince *string   `db:"customer_since"`
	CreatedAt     time.Time `db:"created_at"`
}

// ContactMessageModel представляет запись таблицы contact_messages в PostgreSQL.
type ContactMessageModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Subject   string    `db:"subject"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}

// UserModel представляет запись таблицы users в PostgreSQL.
type UserModel struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
	Password string `db:"password"`
}
