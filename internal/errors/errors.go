package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserAlreadyExists is returned when registering a taken username.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrAuthenticationFailed is returned for any bad login, without
	// revealing whether the username or the password was wrong.
	ErrAuthenticationFailed = errors.New("invalid username or password")
	// ErrInvalidToken is returned when a token is malformed, expired, or
	// carries a bad signature.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrCategoryNotFound is returned when a category id does not exist.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrCategoryExists is returned on a duplicate category name.
	ErrCategoryExists = errors.New("category already exists")
	// ErrCategoryNotEmpty is returned when deleting a category that still
	// owns medicines without opting into a cascade.
	ErrCategoryNotEmpty = errors.New("category still has medicines")
	// ErrManufacturerNotFound is returned when a manufacturer id does not exist.
	ErrManufacturerNotFound = errors.New("manufacturer not found")
	// ErrManufacturerExists is returned on a duplicate manufacturer name.
	ErrManufacturerExists = errors.New("manufacturer already exists")
	// ErrMedicineNotFound is returned when a medicine id does not exist.
	ErrMedicineNotFound = errors.New("medicine not found")
	// ErrInvalidPrice is returned when a medicine price is negative.
	ErrInvalidPrice = errors.New("price must not be negative")
)

// MapError maps domain errors to an HTTP status and client-safe message.
// Unknown errors map to 500 with a generic message so internal detail
// never leaks into responses.
func MapError(err error) (int, string) {
	switch {
	case errors.Is(err, ErrUserAlreadyExists):
		return http.StatusConflict, ErrUserAlreadyExists.Error()
	case errors.Is(err, ErrAuthenticationFailed):
		return http.StatusUnauthorized, ErrAuthenticationFailed.Error()
	case errors.Is(err, ErrInvalidToken):
		return http.StatusUnauthorized, ErrInvalidToken.Error()
	case errors.Is(err, ErrCategoryNotFound):
		return http.StatusNotFound, ErrCategoryNotFound.Error()
	case errors.Is(err, ErrCategoryExists):
		return http.StatusConflict, ErrCategoryExists.Error()
	case errors.Is(err, ErrCategoryNotEmpty):
		return http.StatusConflict, ErrCategoryNotEmpty.Error()
	case errors.Is(err, ErrManufacturerNotFound):
		return http.StatusNotFound, ErrManufacturerNotFound.Error()
	case errors.Is(err, ErrManufacturerExists):
		return http.StatusConflict, ErrManufacturerExists.Error()
	case errors.Is(err, ErrMedicineNotFound):
		return http.StatusNotFound, ErrMedicineNotFound.Error()
	case errors.Is(err, ErrInvalidPrice):
		return http.StatusBadRequest, ErrInvalidPrice.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
