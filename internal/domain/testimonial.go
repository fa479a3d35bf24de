package domain

import "time"

// Testimonial описывает отзыв покупателя
type Testimonial struct {
	ID            int64     `json:"id"`
	CustomerName  string    `json:"customerName"`
	CustomerImage *string   `json:"customerImage"`
	Comment       string    `json:"comment"`
	Rating        int       `json:"rating"`
	CustomerSince *string   `json:"customerSince"`
	CreatedAt     time.Time `json:"createdAt"`
}

type TestimonialInput struct {
	CustomerName  string  `json:"customerName" validate:"required,notblank,text,max=120"`
	CustomerImage *string `json:"customerImage" validate:"omitempty,text,max=2048"`
	Comment       string  `json:"comment" validate:"required,notblank,text,max=2000"`
	Rating        int     `json:"rating" validate:"min=1,max=5"`
	CustomerSince *string `json:"customerSince" validate:"omitempty,text,max=32"`
}

func NewTestimonial(id int64, in TestimonialInput, createdAt time.Time) Testimonial {
	return Testimonial{
		ID:            id,
		CustomerName:  in.CustomerName,
		CustomerImage: CloneString(in.CustomerImage),
		Comment:       in.Comment,
		Rating:        in.Rating,
		CustomerSince: CloneString(in.CustomerSince),
		CreatedAt:     createdAt,
	}
}

func (t Testimonial) Clone() Testimonial {
	t.CustomerImage = CloneString(t.CustomerImage)
	t.CustomerSince = CloneString(t.CustomerSince)
	return t
}
