package myerrors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	myErr := fmt.Errorf("my error")

	testCases := []struct {
		name       string
		in         error
		httpStatus int
		errorText  string
		validation bool
		payment    bool
	}{
		{
			name:       "No http error",
			in:         myErr,
			httpStatus: 500,
			errorText:  "my error",
		},
		{
			name:       "Invalid input error",
			in:         NewInvalidInputError(myErr),
			httpStatus: 400,
			errorText:  "status: 400, err: my error",
		},
		{
			name:       "Invalid input errorf",
			in:         NewInvalidInputErrorf("%s: %d", myErr.Error(), 123),
			httpStatus: 400,
			errorText:  "status: 400, err: my error: 123",
		},
		{
			name:       "Validation error",
			in:         NewValidationErrorf("email and password required"),
			httpStatus: 400,
			errorText:  "status: 400, err: email and password required",
			validation: true,
		},
		{
			name:       "Payment error",
			in:         NewPaymentError(myErr),
			httpStatus: 402,
			errorText:  "status: 402, err: my error",
			payment:    true,
		},
		{
			name:       "Authentication error",
			in:         NewAuthenticationError(myErr),
			httpStatus: 403,
			errorText:  "status: 403, err: my error",
		},
		{
			name:       "Not found error",
			in:         NewNotFoundError(myErr),
			httpStatus: 404,
			errorText:  "status: 404, err: my error",
		},
		{
			name:       "UnsupportedMedia error",
			in:         NewUnsupportedMediaTypeError(myErr),
			httpStatus: 415,
			errorText:  "status: 415, err: my error",
		},
		{
			name:       "Internal error",
			in:         NewInternalError(myErr),
			httpStatus: 500,
			errorText:  "status: 500, err: my error",
		},
		{
			name:       "Not implemented error",
			in:         NewNotImplementedError(myErr),
			httpStatus: 501,
			errorText:  "status: 501, err: my error",
		},
		{
			name:       "Not available error",
			in:         NewUnavailableError(myErr),
			httpStatus: 503,
			errorText:  "status: 503, err: my error",
		},
		{
			name:       "Wrapped validation error",
			in:         fmt.Errorf("login: %w", NewValidationError(myErr)),
			httpStatus: 400,
			errorText:  "login: status: 400, err: my error",
			validation: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.httpStatus, GetHTTPStatus(tc.in))
			assert.Equal(t, tc.errorText, tc.in.Error())
			assert.Equal(t, tc.validation, IsValidationError(tc.in))
			assert.Equal(t, tc.payment, IsPaymentError(tc.in))
		})
	}
}

func TestGetMessage(t *testing.T) {
	assert.Equal(t, "card declined", GetMessage(NewPaymentError(fmt.Errorf("card declined"))))
	assert.Equal(t, "plain", GetMessage(fmt.Errorf("plain")))
}
