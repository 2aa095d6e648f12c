package myerrors

import (
	"errors"
	"fmt"
	"net/http"
)

type kind int

const (
	kindGeneric kind = iota
	kindValidation
	kindPayment
)

type httpErrorCoder interface {
	error
	GetHTTPErrorCode() int
}

type httpError struct {
	httpCode int
	kind     kind
	err      error
}

func (e httpError) Error() string {
	return fmt.Sprintf("status: %d, err: %s", e.httpCode, e.err.Error())
}

func (e httpError) Unwrap() error {
	return e.err
}

func (e httpError) GetHTTPErrorCode() int {
	return e.httpCode
}

// Message returns the text of the wrapped error, without the status prefix
func (e httpError) Message() string {
	return e.err.Error()
}

func newError(httpCode int, err error) *httpError {
	return &httpError{
		httpCode: httpCode,
		err:      err,
	}
}

func NewInvalidInputError(err error) *httpError {
	return newError(http.StatusBadRequest, err)
}

func NewInvalidInputErrorf(format string, args ...any) *httpError {
	return NewInvalidInputError(fmt.Errorf(format, args...))
}

// NewValidationError reports required input that is missing or empty. Always recoverable by resubmission.
func NewValidationError(err error) *httpError {
	e := newError(http.StatusBadRequest, err)
	e.kind = kindValidation
	return e
}

func NewValidationErrorf(format string, args ...any) *httpError {
	return NewValidationError(fmt.Errorf(format, args...))
}

// NewPaymentError reports a payment attempt that did not complete. The caller may retry with the same input.
func NewPaymentError(err error) *httpError {
	e := newError(http.StatusPaymentRequired, err)
	e.kind = kindPayment
	return e
}

func NewNotFoundError(err error) *httpError {
	return newError(http.StatusNotFound, err)
}

func NewAuthenticationError(err error) *httpError {
	return newError(http.StatusForbidden, err)
}

func NewUnsupportedMediaTypeError(err error) *httpError {
	return newError(http.StatusUnsupportedMediaType, err)
}

func NewInternalError(err error) *httpError {
	return newError(http.StatusInternalServerError, err)
}

func NewNotImplementedError(err error) *httpError {
	return newError(http.StatusNotImplemented, err)
}

func NewUnavailableError(err error) *httpError {
	return newError(http.StatusServiceUnavailable, err)
}

func GetHTTPStatus(err error) int {
	var coder httpErrorCoder
	if errors.As(err, &coder) {
		return coder.GetHTTPErrorCode()
	}
	return http.StatusInternalServerError
}

// GetMessage returns the human readable part of an error, suitable for inline display
func GetMessage(err error) string {
	var e *httpError
	if errors.As(err, &e) {
		return e.Message()
	}
	return err.Error()
}

func IsValidationError(err error) bool {
	return hasKind(err, kindValidation)
}

func IsPaymentError(err error) bool {
	return hasKind(err, kindPayment)
}

func hasKind(err error, k kind) bool {
	var e *httpError
	if errors.As(err, &e) {
		return e.kind == k
	}
	return false
}
