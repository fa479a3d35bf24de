package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки выбора хранилища
	ErrStorageUnavailable = fmt.Errorf("persistent storage unavailable")
	ErrDatabaseURLMissing = fmt.Errorf("database url is not set")

	// 400 Bad Request
	ErrValidation        = fmt.Errorf("validation error")
	ErrInvalidID         = fmt.Errorf("invalid id")
	ErrInvalidBody       = fmt.Errorf("invalid request body")
	ErrPricePrecision    = fmt.Errorf("price must have at most 2 decimal places")
	ErrIncorrectEnvValue = fmt.Errorf("incorrect environment variable value")

	// 404 Not Found
	ErrNotFound = fmt.Errorf("resource not found")

	// 409 Conflict
	ErrConflict = fmt.Errorf("resource already exists")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
