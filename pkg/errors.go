package pkg

import "fmt"

// HTTPError is the JSON error body returned to API consumers.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AppError carries a stable error code, a user-facing message and the HTTP
// status the handlers should respond with. The wrapped cause is logged, never
// serialized.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}
