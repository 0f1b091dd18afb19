package auth

import (
	"net/mail"

	"github.com/megapark/hotel-backend/internal"
)

// LoginDTO is the transport shape for login requests.
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshTokenDTO for refresh token requests
type RefreshTokenDTO struct {
	RefreshToken string `json:"refreshToken"`
}

// Validate checks the login payload, returning field-level details.
func (d LoginDTO) Validate() error {
	var errs []internal.ValidationError

	if d.Email == "" {
		errs = append(errs, internal.ValidationError{Field: "email", Message: "email is required", Code: string(internal.ErrCodeValidationFailed)})
	} else if _, err := mail.ParseAddress(d.Email); err != nil {
		errs = append(errs, internal.ValidationError{Field: "email", Message: "Invalid email", Code: string(internal.ErrCodeValidationFailed)})
	}

	if d.Password == "" {
		errs = append(errs, internal.ValidationError{Field: "password", Message: "Password required", Code: string(internal.ErrCodeValidationFailed)})
	}

	if len(errs) > 0 {
		return internal.NewValidationFieldErrors(errs)
	}
	return nil
}
