package errors

import (
	"fmt"
	"net/http"
)

var (
	// JWT i tokeni
	ErrInvalidSigningMethod = fmt.Errorf("nevažeći metod potpisivanja tokena")
	ErrInvalidToken         = fmt.Errorf("nevažeći token")
	ErrTokenExpired         = fmt.Errorf("token je istekao")
	ErrTokenNotYetValid     = fmt.Errorf("token još nije aktivan")

	// Autentifikacija i autorizacija
	ErrEmptyAuthHeader    = fmt.Errorf("Authorization zaglavlje nedostaje")
	ErrInvalidAuthHeader  = fmt.Errorf("neispravan format Authorization zaglavlja")
	ErrInvalidCredentials = fmt.Errorf("neispravno korisničko ime ili šifra")
	ErrUnauthorized       = fmt.Errorf("niste prijavljeni")
	ErrForbidden          = fmt.Errorf("nemate pravo pristupa")

	// Kontekst zahteva
	ErrUserIDNotFoundInContext = fmt.Errorf("UserID nije pronađen u kontekstu zahteva")

	// Opšte
	ErrNotFound   = fmt.Errorf("zapis nije pronađen")
	ErrBadRequest = fmt.Errorf("neispravan zahtev")
)

// HttpError nosi HTTP status uz poruku za klijenta; Err je interni uzrok
// koji se loguje, ali se nikada ne šalje klijentu.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error {
	return e.Err
}

func NewHttpError(code int, message string, err error, details interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

// Prečice za najčešće slučajeve iz kontrolera i servisa.

func NewBadRequestError(message string, err error) *HttpError {
	return NewHttpError(http.StatusBadRequest, message, err, nil)
}

func NewNotFoundError(message string) *HttpError {
	return NewHttpError(http.StatusNotFound, message, nil, nil)
}

func NewForbiddenError(message string) *HttpError {
	return NewHttpError(http.StatusForbidden, message, nil, nil)
}

func NewUnauthorizedError(message string) *HttpError {
	return NewHttpError(http.StatusUnauthorized, message, nil, nil)
}
