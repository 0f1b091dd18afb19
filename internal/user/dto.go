package user

import (
	"net/mail"

	"github.com/megapark/hotel-backend/internal"
	"github.com/megapark/hotel-backend/internal/auth"
)

// CreateUserDTO is the payload for creating an admin user.
type CreateUserDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// UpdateUserDTO carries the mutable user fields; nil means unchanged.
type UpdateUserDTO struct {
	Name     *string `json:"name,omitempty"`
	Role     *string `json:"role,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// ChangePasswordDTO is the payload for the password-change operation.
type ChangePasswordDTO struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func validRole(role string) bool {
	return role == auth.RoleAdmin || role == auth.RoleStaff
}

func (d *CreateUserDTO) Validate() error {
	var errs []internal.ValidationError

	if d.Email == "" {
		errs = append(errs, internal.ValidationError{Field: "email", Message: "email is required", Code: string(internal.ErrCodeValidationFailed)})
	} else if _, err := mail.ParseAddress(d.Email); err != nil {
		errs = append(errs, internal.ValidationError{Field: "email", Message: "Invalid email", Code: string(internal.ErrCodeValidationFailed)})
	}

	if len(d.Password) < 8 {
		errs = append(errs, internal.ValidationError{Field: "password", Message: "Password must be at least 8 characters", Code: string(internal.ErrCodeValidationFailed)})
	}

	if d.Name == "" || len(d.Name) > 255 {
		errs = append(errs, internal.ValidationError{Field: "name", Message: "Name required", Code: string(internal.ErrCodeValidationFailed)})
	}

	if d.Role == "" {
		d.Role = auth.RoleStaff
	} else if !validRole(d.Role) {
		errs = append(errs, internal.ValidationError{Field: "role", Message: "role must be admin or staff", Code: string(internal.ErrCodeValidationFailed)})
	}

	if len(errs) > 0 {
		return internal.NewValidationFieldErrors(errs)
	}
	return nil
}

func (d *UpdateUserDTO) Validate() error {
	if d.Name == nil && d.Role == nil && d.IsActive == nil {
		return internal.NewValidationError("At least one field required", internal.ErrCodeValidationFailed)
	}

	var errs []internal.ValidationError

	if d.Name != nil && (*d.Name == "" || len(*d.Name) > 255) {
		errs = append(errs, internal.ValidationError{Field: "name", Message: "Name required", Code: string(internal.ErrCodeValidationFailed)})
	}

	if d.Role != nil && !validRole(*d.Role) {
		errs = append(errs, internal.ValidationError{Field: "role", Message: "role must be admin or staff", Code: string(internal.ErrCodeValidationFailed)})
	}

	if len(errs) > 0 {
		return internal.NewValidationFieldErrors(errs)
	}
	return nil
}

func (d *ChangePasswordDTO) Validate() error {
	if len(d.NewPassword) < 8 {
		return internal.NewValidationError("Password must be at least 8 characters", internal.ErrCodeValidationFailed)
	}
	return nil
}
