package errors

import (
	"fmt"
	"net/http"
)

var (
	// Branch catalog
	ErrNotFound      = fmt.Errorf("record not found")
	ErrNoPhone       = fmt.Errorf("branch has no phone number")
	ErrEmptyCatalog  = fmt.Errorf("branch catalog is empty")
	ErrUnknownSource = fmt.Errorf("unknown branch source")

	// Order form
	ErrUnknownField = fmt.Errorf("unknown form field")
	ErrValidation   = fmt.Errorf("validation failed")

	// Common
	ErrBadRequest = fmt.Errorf("bad request")
)

// HttpError carries the status code and the user-facing message for a failed request.
// Err is logged, never shown to the visitor.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}

func NewBadRequestError(message string) *HttpError {
	return &HttpError{Code: http.StatusBadRequest, Message: message, Err: ErrBadRequest}
}

func NewNotFoundError(message string) *HttpError {
	return &HttpError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}
