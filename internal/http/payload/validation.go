package payload

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jellydator/validation"
)

var errNotFillable = errors.New("object cannot be filled from form values")

// FormFiller populates a payload struct from url-encoded form values.
type FormFiller interface {
	FillFrom(values url.Values)
}

type DecodeValidator struct{}

func (dv DecodeValidator) DecodeAndValidateForm(r *http.Request, object any) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("parsing form payload: %w", err)
	}

	f, ok := object.(FormFiller)
	if !ok {
		return fmt.Errorf("%w: %T", errNotFillable, object)
	}
	f.FillFrom(r.PostForm)

	return dv.validatePayload(object)
}

func (dv *DecodeValidator) validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}
