package domain

import (
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"beer_service/pkg/errcodes"
)

var (
	ErrBeerNotFound = failure.NewNotFoundError(
		"beer not found",
		failure.WithCode(errcodes.BeerNotFound),
	)

	// ErrStaleBeer возвращает хранилище, когда версия сохраняемого пива
	// отстала от сохранённой.
	ErrStaleBeer = failure.NewConflictError(
		"beer was modified by another request",
		failure.WithCode(errcodes.VersionConflict),
	)
)

// AppError ошибка хранилища или данных с кодом из errcodes. Клиенту уходит
// как 500, код и причина остаются в логе.
type AppError struct {
	Code    failure.ErrorCode
	Message string
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.cause
}

func NewError(code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// WrapError добавляет код и сообщение к ошибке драйвера.
func WrapError(err error, code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

// GetCode извлекает код ближайшей AppError в цепочке.
func GetCode(err error) (failure.ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}

	return "", false
}

// IsStaleBeer сверяет вид и код ошибки: ошибки failure несравнимы, errors.Is
// с ErrStaleBeer не сработает.
func IsStaleBeer(err error) bool {
	return failure.IsConflictError(err) && failure.HasCode(err, errcodes.VersionConflict)
}
