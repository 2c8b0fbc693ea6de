package payload

import (
	"github.com/jellydator/validation"
)

// CredentialsRequest is the body of the sign-up and login endpoints.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c CredentialsRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Username, validation.Required, validation.Length(1, 255)),
		validation.Field(&c.Password, validation.Required),
	)
}
