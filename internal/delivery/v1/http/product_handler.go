package http

import (
	"net/http"

	"github.com/DRSN-tech/catalog/internal/domain"
	"github.com/DRSN-tech/catalog/internal/usecase"
	"github.com/DRSN-tech/catalog/pkg/logger"
)

type ProductHandler struct {
	catalog usecase.CatalogUC
	logger  logger.Logger
}

func NewProductHandler(catalog usecase.CatalogUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{catalog: catalog, logger: logger}
}

// list
//
//	@Summary	Список товаров
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}		domain.Product
//	@Failure	500	{object}	ErrorResponse
//	@Router		/products [get]
func (p *ProductHandler) list(w http.ResponseWriter, r *http.Request) {
	products, err := p.catalog.ListProducts(r.Context())
	if err != nil {
		respondError(w, r, p.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, products)
}

// get
//
//	@Summary	Товар по ID
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"ID товара"
//	@Success	200	{object}	domain.Product
//	@Failure	400	{object}	ErrorResponse	"Некорректный ID"
//	@Failure	404	{object}	ErrorResponse	"Товар не найден"
//	@Router		/products/{id} [get]
func (p *ProductHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondError(w, r, p.logger, err)
		return
	}

	product, err := p.catalog.GetProduct(r.Context(), id)
	if err != nil {
		respondError(w, r, p.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, product)
}

// listByCategory
//
//	@Summary	Товары категории
//	@Tags		products
//	@Produce	json
//	@Param		categoryID	path		int	true	"ID категории"
//	@Success	200			{array}		domain.Product
//	@Failure	400			{object}	ErrorResponse	"Некорректный ID"
//	@Router		/products/category/{categoryID} [get]
func (p *ProductHandler) listByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parseID(r, "categoryID")
	if err != nil {
		respondError(w, r, p.logger, err)
		return
	}

	products, err := p.catalog.ListProductsByCategory(r.Context(), categoryID)
	if err != nil {
		respondError(w, r, p.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, products)
}

// create
//
//	@Summary		Создание товара
//	@Description	Рейтинг и количество отзывов нового товара равны нулю.
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		domain.ProductInput	true	"Новый товар"
//	@Success		201		{object}	domain.Product
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/products [post]
func (p *ProductHandler) create(w http.ResponseWriter, r *http.Request) {
	var in domain.ProductInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, p.logger, err)
		return
	}

	product, err := p.catalog.CreateProduct(r.Context(), in)
	if err != nil {
		respondError(w, r, p.logger, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, product)
}

// update
//
//	@Summary	Частичное обновление товара
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"ID товара"
//	@Param		patch	body		domain.ProductPatch	true	"Изменяемые поля"
//	@Success	200		{object}	domain.Product
//	@Failure	400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure	404		{object}	ErrorResponse	"Товар не найден"
//	@Router		/products/{id} [patch]
func (p *ProductHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondError(w, r, p.logger, err)
		return
	}

	var patch domain.ProductPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		respondError(w, r, p.logger, err)
		return
	}

	product, err := p.catalog.UpdateProduct(r.Context(), id, patch)
	if err != nil {
		respondError(w, r, p.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, product)
}

// delete
//
//	@Summary	Удаление товара
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"ID товара"
//	@Success	200	{object}	MessageResponse
//	@Failure	404	{object}	ErrorResponse	"Товар не найден"
//	@Router		/products/{id} [delete]
func (p *ProductHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondError(w, r, p.logger, err)
		return
	}

	if err := p.catalog.DeleteProduct(r.Context(), id); err != nil {
		respondError(w, r, p.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, MessageResponse{Message: "Product deleted successfully"})
}
