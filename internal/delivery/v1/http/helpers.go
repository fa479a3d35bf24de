package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/DRSN-tech/catalog/internal/domain"
	"github.com/DRSN-tech/catalog/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const maxBodySize = 1 << 20

type ErrorResponse struct {
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

// MessageResponse — ответ без данных, только с текстом для пользователя.
type MessageResponse struct {
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// ToHTTPResponse сопоставляет ошибку со статусом и телом ответа.
// Текст неизвестных ошибок клиенту не отдаётся.
func ToHTTPResponse(err error) *ErrorResponse {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		resp := NewErrorResponse(http.StatusBadRequest, e.ErrValidation.Error())
		resp.Fields = verr.Fields
		return resp
	case errors.Is(err, e.ErrInvalidID):
		return NewErrorResponse(http.StatusBadRequest, e.ErrInvalidID.Error())
	case errors.Is(err, e.ErrInvalidBody):
		return NewErrorResponse(http.StatusBadRequest, e.ErrInvalidBody.Error())
	case errors.Is(err, e.ErrNotFound):
		return NewErrorResponse(http.StatusNotFound, e.ErrNotFound.Error())
	case errors.Is(err, e.ErrConflict):
		return NewErrorResponse(http.StatusConflict, e.ErrConflict.Error())
	default:
		return NewErrorResponse(http.StatusInternalServerError, e.ErrInternalServerError.Error())
	}
}

func WriteError(w http.ResponseWriter, err error) {
	resp := ToHTTPResponse(err)
	WriteSuccess(w, resp.Code, resp)
}

func WriteSuccess(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// decodeJSON читает тело запроса в dst. Неизвестные поля игнорируются.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return e.Wrap("empty body", e.ErrInvalidBody)
		}
		return e.Wrap(err.Error(), e.ErrInvalidBody)
	}

	return nil
}

// parseID извлекает положительный целочисленный параметр пути.
func parseID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, e.Wrap(whereami.WhereAmI(), e.ErrInvalidID)
	}

	return id, nil
}
