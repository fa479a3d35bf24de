package domain

import "time"

// Product описывает товар каталога
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description *string   `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	CategoryID  int64     `json:"categoryId"` // Ссылка на категорию, целостность не проверяется хранилищем
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"reviewCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProductInput — поля, принимаемые при создании товара.
// Рейтинг и количество отзывов назначаются хранилищем. Цена обязательна,
// поэтому хранится указателем: отсутствие поля отличается от нуля.
type ProductInput struct {
	Name        string   `json:"name" validate:"required,notblank,text,max=200"`
	Price       *float64 `json:"price" validate:"required,gte=0,price"`
	Description *string  `json:"description" validate:"omitempty,text,max=4000"`
	ImageURL    *string  `json:"imageUrl" validate:"omitempty,text,max=2048"`
	CategoryID  int64    `json:"categoryId" validate:"required,gt=0"`
}

// ProductPatch — частичное обновление товара, nil-поля не меняются.
type ProductPatch struct {
	Name        *string  `json:"name" validate:"omitempty,notblank,text,max=200"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0,price"`
	Description *string  `json:"description" validate:"omitempty,text,max=4000"`
	ImageURL    *string  `json:"imageUrl" validate:"omitempty,text,max=2048"`
	CategoryID  *int64   `json:"categoryId" validate:"omitempty,gt=0"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	ReviewCount *int     `json:"reviewCount" validate:"omitempty,gte=0,lte=2147483647"` // review_count INTEGER
}

// NewProduct собирает товар из входных данных с серверными значениями по умолчанию.
func NewProduct(id int64, in ProductInput, createdAt time.Time) Product {
	return Product{
		ID:          id,
		Name:        in.Name,
		Price:       Deref(in.Price),
		Description: CloneString(in.Description),
		ImageURL:    CloneString(in.ImageURL),
		CategoryID:  in.CategoryID,
		Rating:      0,
		ReviewCount: 0,
		CreatedAt:   createdAt,
	}
}

// Apply накладывает присутствующие поля патча на копию товара. CreatedAt не меняется.
func (p ProductPatch) Apply(pr Product) Product {
	if p.Name != nil {
		pr.Name = *p.Name
	}
	if p.Price != nil {
		pr.Price = *p.Price
	}
	if p.Description != nil {
		pr.Description = CloneString(p.Description)
	}
	if p.ImageURL != nil {
		pr.ImageURL = CloneString(p.ImageURL)
	}
	if p.CategoryID != nil {
		pr.CategoryID = *p.CategoryID
	}
	if p.Rating != nil {
		pr.Rating = *p.Rating
	}
	if p.ReviewCount != nil {
		pr.ReviewCount = *p.ReviewCount
	}

	return pr
}

func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil && p.Description == nil && p.ImageURL == nil &&
		p.CategoryID == nil && p.Rating == nil && p.ReviewCount == nil
}

func (pr Product) Clone() Product {
	pr.Description = CloneString(pr.Description)
	pr.ImageURL = CloneString(pr.ImageURL)
	return pr
}
