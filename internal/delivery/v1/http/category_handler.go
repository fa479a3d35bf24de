package http

import (
	"net/http"

	"github.com/DRSN-tech/catalog/internal/domain"
	"github.com/DRSN-tech/catalog/internal/usecase"
	"github.com/DRSN-tech/catalog/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CategoryHandler struct {
	catalog usecase.CatalogUC
	logger  logger.Logger
}

func NewCategoryHandler(catalog usecase.CatalogUC, logger logger.Logger) *CategoryHandler {
	return &CategoryHandler{catalog: catalog, logger: logger}
}

// list
//
//	@Summary	Список категорий
//	@Tags		categories
//	@Produce	json
//	@Success	200	{array}		domain.Category
//	@Failure	500	{object}	ErrorResponse
//	@Router		/categories [get]
func (h *CategoryHandler) list(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, categories)
}

// getBySlug
//
//	@Summary	Категория по слагу
//	@Tags		categories
//	@Produce	json
//	@Param		slug	path		string	true	"Слаг категории"
//	@Success	200		{object}	domain.Category
//	@Failure	404		{object}	ErrorResponse	"Категория не найдена"
//	@Router		/categories/{slug} [get]
func (h *CategoryHandler) getBySlug(w http.ResponseWriter, r *http.Request) {
	category, err := h.catalog.GetCategoryBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, category)
}

// create
//
//	@Summary	Создание категории
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Param		category	body		domain.CategoryInput	true	"Новая категория"
//	@Success	201			{object}	domain.Category
//	@Failure	400			{object}	ErrorResponse	"Ошибка валидации"
//	@Failure	409			{object}	ErrorResponse	"Слаг уже занят"
//	@Router		/categories [post]
func (h *CategoryHandler) create(w http.ResponseWriter, r *http.Request) {
	var in domain.CategoryInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	category, err := h.catalog.CreateCategory(r.Context(), in)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, category)
}

// update
//
//	@Summary	Частичное обновление категории
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"ID категории"
//	@Param		patch	body		domain.CategoryPatch	true	"Изменяемые поля"
//	@Success	200		{object}	domain.Category
//	@Failure	400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure	404		{object}	ErrorResponse	"Категория не найдена"
//	@Failure	409		{object}	ErrorResponse	"Слаг уже занят"
//	@Router		/categories/{id} [patch]
func (h *CategoryHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	var patch domain.CategoryPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	category, err := h.catalog.UpdateCategory(r.Context(), id, patch)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, category)
}

// delete
//
//	@Summary		Удаление категории
//	@Description	Товары категории не удаляются.
//	@Tags			categories
//	@Param			id	path	int	true	"ID категории"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse	"Категория не найдена"
//	@Router			/categories/{id} [delete]
func (h *CategoryHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	if err := h.catalog.DeleteCategory(r.Context(), id); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
