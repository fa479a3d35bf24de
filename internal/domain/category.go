package domain

// Category описывает категорию каталога
type Category struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	ImageURL *string `json:"imageUrl"`
}

// CategoryInput — поля, принимаемые при создании категории.
type CategoryInput struct {
	Name     string  `json:"name" validate:"required,notblank,text,max=120"`
	Slug     string  `json:"slug" validate:"required,slug,max=120"`
	ImageURL *string `json:"imageUrl" validate:"omitempty,text,max=2048"`
}

// CategoryPatch — частичное обновление категории, nil-поля не меняются.
type CategoryPatch struct {
	Name     *string `json:"name" validate:"omitempty,notblank,text,max=120"`
	Slug     *string `json:"slug" validate:"omitempty,slug,max=120"`
	ImageURL *string `json:"imageUrl" validate:"omitempty,text,max=2048"`
}

func NewCategory(id int64, in CategoryInput) Category {
	return Category{
		ID:       id,
		Name:     in.Name,
		Slug:     in.Slug,
		ImageURL: CloneString(in.ImageURL),
	}
}

// Apply накладывает присутствующие поля патча на копию категории.
func (p CategoryPatch) Apply(c Category) Category {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Slug != nil {
		c.Slug = *p.Slug
	}
	if p.ImageURL != nil {
		c.ImageURL = CloneString(p.ImageURL)
	}

	return c
}

func (p CategoryPatch) IsEmpty() bool {
	return p.Name == nil && p.Slug == nil && p.ImageURL == nil
}

// Clone возвращает копию, не разделяющую указатели с оригиналом.
func (c Category) Clone() Category {
	c.ImageURL = CloneString(c.ImageURL)
	return c
}
