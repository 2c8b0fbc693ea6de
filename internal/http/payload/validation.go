package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/jellydator/validation"
)

var errTrailingData = errors.New("unexpected data after the json value")

// DecodeValidator reads a JSON request body into a payload and validates it when the payload
// implements validation.Validatable.
type DecodeValidator struct{}

func (dv DecodeValidator) DecodeAndValidateJSONPayload(r *http.Request, object any) (err error) {
	defer func() {
		errClose := r.Body.Close()
		if err == nil && errClose != nil {
			err = fmt.Errorf("closing request body: %w", errClose)
		}
	}()

	if err = decodeStrict(r, object); err != nil {
		return err
	}

	t, ok := object.(validation.Validatable)
	if !ok {
		return nil
	}

	if err = t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}

// decodeStrict decodes exactly one JSON value and rejects fields the payload does not declare.
func decodeStrict(r *http.Request, object any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	if decoder.More() {
		return fmt.Errorf("decoding json payload: %w", errTrailingData)
	}

	return nil
}
