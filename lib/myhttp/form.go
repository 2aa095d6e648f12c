package myhttp

import (
	"fmt"
	"net/http"

	"github.com/go-playground/form/v4"

	"github.com/MarcGrol/cakeshop/lib/myerrors"
)

var formDecoder = form.NewDecoder()

// DecodeForm fills dst from an url-encoded request body (or query string)
func DecodeForm(r *http.Request, dst any) error {
	err := r.ParseForm()
	if err != nil {
		return myerrors.NewInvalidInputError(fmt.Errorf("error parsing form: %s", err))
	}

	err = formDecoder.Decode(dst, r.Form)
	if err != nil {
		return myerrors.NewInvalidInputError(fmt.Errorf("error decoding form: %s", err))
	}

	return nil
}
