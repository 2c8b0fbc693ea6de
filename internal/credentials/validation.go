package credentials

import (
	"context"
	"errors"
	"fmt"

	"github.com/jellydator/validation"
)

// userFields is the view of a User checked before every write.
type userFields struct {
	Username         string `json:"username"`
	PasswordVerifier string `json:"password_verifier"`
	SessionToken     string `json:"session_token"`
	Password         string `json:"password"`
}

// Validate checks presence, password length and uniqueness of user. Field failures are returned
// as *ValidationError; a failing uniqueness lookup is returned as *PersistenceError.
func (m *Manager) Validate(ctx context.Context, user *User) error {
	fields := userFields{
		Username:         user.Username,
		PasswordVerifier: user.PasswordVerifier,
		SessionToken:     user.SessionToken,
		Password:         user.password,
	}

	err := validation.ValidateStructWithContext(ctx, &fields,
		validation.Field(&fields.Username,
			validation.Required,
			validation.WithContext(m.unique(user.ID, m.repo.UsernameExists)),
		),
		validation.Field(&fields.PasswordVerifier, validation.Required),
		validation.Field(&fields.SessionToken,
			validation.Required,
			validation.WithContext(m.unique(user.ID, m.repo.SessionTokenExists)),
		),
		validation.Field(&fields.Password,
			validation.When(user.passwordSet,
				validation.Required,
				validation.RuneLength(m.cfg.PasswordMinLength, 0),
			),
			validation.By(func(any) error {
				if user.passwordErr != nil {
					return errUnhashable
				}
				return nil
			}),
		),
	)
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		return &ValidationError{Errors: fieldErrs}
	}

	var internalErr validation.InternalError
	if errors.As(err, &internalErr) {
		err = internalErr.InternalError()
	}

	return &PersistenceError{Op: "validate user", Err: err}
}

func (m *Manager) unique(ownID string, exists func(ctx context.Context, value, excludeID string) (bool, error)) validation.RuleWithContextFunc {
	return func(ctx context.Context, value any) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}

		taken, err := exists(ctx, s, ownID)
		if err != nil {
			return validation.NewInternalError(fmt.Errorf("check uniqueness: %w", err))
		}

		if taken {
			return errTaken
		}
		return nil
	}
}
