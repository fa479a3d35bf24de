package http

import (
	"net/http"

	"github.com/DRSN-tech/catalog/internal/domain"
	"github.com/DRSN-tech/catalog/internal/usecase"
	"github.com/DRSN-tech/catalog/pkg/logger"
)

// TestimonialHandler обслуживает отзывы и форму обратной связи.
type TestimonialHandler struct {
	catalog usecase.CatalogUC
	logger  logger.Logger
}

func NewTestimonialHandler(catalog usecase.CatalogUC, logger logger.Logger) *TestimonialHandler {
	return &TestimonialHandler{catalog: catalog, logger: logger}
}

// list
//
//	@Summary	Список отзывов
//	@Tags		testimonials
//	@Produce	json
//	@Success	200	{array}		domain.Testimonial
//	@Failure	500	{object}	ErrorResponse
//	@Router		/testimonials [get]
func (h *TestimonialHandler) list(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.catalog.ListTestimonials(r.Context())
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, testimonials)
}

// create
//
//	@Summary	Новый отзыв
//	@Tags		testimonials
//	@Accept		json
//	@Produce	json
//	@Param		testimonial	body		domain.TestimonialInput	true	"Отзыв"
//	@Success	201			{object}	domain.Testimonial
//	@Failure	400			{object}	ErrorResponse	"Ошибка валидации"
//	@Router		/testimonials [post]
func (h *TestimonialHandler) create(w http.ResponseWriter, r *http.Request) {
	var in domain.TestimonialInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	testimonial, err := h.catalog.CreateTestimonial(r.Context(), in)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, testimonial)
}

// contact принимает обращение. Сохранённая запись клиенту не возвращается.
//
//	@Summary	Форма обратной связи
//	@Tags		contact
//	@Accept		json
//	@Produce	json
//	@Param		message	body		domain.ContactMessageInput	true	"Обращение"
//	@Success	201		{object}	MessageResponse
//	@Failure	400		{object}	ErrorResponse	"Ошибка валидации"
//	@Router		/contact [post]
func (h *TestimonialHandler) contact(w http.ResponseWriter, r *http.Request) {
	var in domain.ContactMessageInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	if _, err := h.catalog.SubmitContactMessage(r.Context(), in); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, MessageResponse{Message: "Mensaje enviado correctamente"})
}
