package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeForbidden    ErrorType = "FORBIDDEN"
	ErrorTypeConflict     ErrorType = "CONFLICT"
	ErrorTypeInternal     ErrorType = "INTERNAL_ERROR"
	ErrorTypeExternal     ErrorType = "EXTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	ErrCodeInvalidCredentials  ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeMissingToken        ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidToken        ErrorCode = "INVALID_TOKEN"
	ErrCodeTokenExpired        ErrorCode = "TOKEN_EXPIRED"
	ErrCodeInvalidRefreshToken ErrorCode = "INVALID_REFRESH_TOKEN"
	ErrCodeAdminRequired       ErrorCode = "ADMIN_REQUIRED"
	ErrCodeStaffRequired       ErrorCode = "STAFF_REQUIRED"
	ErrCodeSelfDeleteForbidden ErrorCode = "SELF_DELETE_FORBIDDEN"
	ErrCodeWrongPassword       ErrorCode = "WRONG_PASSWORD"

	ErrCodeUserNotFound     ErrorCode = "USER_NOT_FOUND"
	ErrCodeEmailExists      ErrorCode = "EMAIL_EXISTS"
	ErrCodeRoomNotFound     ErrorCode = "ROOM_NOT_FOUND"
	ErrCodeHallNotFound     ErrorCode = "HALL_NOT_FOUND"
	ErrCodeMenuItemNotFound ErrorCode = "MENU_ITEM_NOT_FOUND"
	ErrCodeOrderNotFound    ErrorCode = "ORDER_NOT_FOUND"
	ErrCodeBookingNotFound  ErrorCode = "BOOKING_NOT_FOUND"

	ErrCodePaymentFailed ErrorCode = "PAYMENT_FAILED"
)

type AppError struct {
	Type       ErrorType   `json:"type"`
	Code       ErrorCode   `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	StatusCode int         `json:"-"`
	Cause      error       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Details != nil {
		if validationErrors, ok := e.Details.(ValidationErrors); ok && len(validationErrors.Errors) > 0 {
			return validationErrors.Errors[0].Message
		}
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) GetDetailedMessage() string {
	if e.Details != nil {
		if validationErrors, ok := e.Details.(ValidationErrors); ok {
			if len(validationErrors.Errors) == 1 {
				return validationErrors.Errors[0].Message
			} else if len(validationErrors.Errors) > 1 {
				messages := make([]string, len(validationErrors.Errors))
				for i, err := range validationErrors.Errors {
					messages[i] = err.Message
				}
				return strings.Join(messages, "; ")
			}
		}
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewValidationFieldError(field, message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       ErrCodeValidationFailed,
		Message:    "Validation error",
		StatusCode: http.StatusBadRequest,
		Details: ValidationErrors{
			Errors: []ValidationError{
				{Field: field, Message: message, Code: string(code)},
			},
		},
	}
}

func NewValidationFieldErrors(errs []ValidationError) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       ErrCodeValidationFailed,
		Message:    "Validation error",
		StatusCode: http.StatusBadRequest,
		Details:    ValidationErrors{Errors: errs},
	}
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

func NewUnauthorizedError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func NewForbiddenError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeForbidden,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusForbidden,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       "INTERNAL_ERROR",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

func NewConflictError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeConflict,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusConflict,
	}
}

var (
	ErrInvalidCredentials  = NewUnauthorizedError("Invalid credentials", ErrCodeInvalidCredentials)
	ErrMissingToken        = NewUnauthorizedError("Unauthorized: missing or invalid token", ErrCodeMissingToken)
	ErrInvalidToken        = NewUnauthorizedError("Unauthorized: invalid token", ErrCodeInvalidToken)
	ErrTokenExpired        = NewUnauthorizedError("Token expired", ErrCodeTokenExpired)
	ErrInvalidRefreshToken = NewUnauthorizedError("Invalid refresh token", ErrCodeInvalidRefreshToken)
	ErrAdminRequired       = NewForbiddenError("Admin access required", ErrCodeAdminRequired)
	ErrStaffRequired       = NewForbiddenError("Staff access required", ErrCodeStaffRequired)
	ErrSelfDeleteForbidden = NewValidationError("Cannot delete your own account", ErrCodeSelfDeleteForbidden)
	ErrWrongPassword       = NewUnauthorizedError("Current password is incorrect", ErrCodeWrongPassword)

	ErrUserNotFound     = NewNotFoundError("User not found", ErrCodeUserNotFound)
	ErrEmailExists      = NewConflictError("Email already exists", ErrCodeEmailExists)
	ErrRoomNotFound     = NewNotFoundError("Room not found", ErrCodeRoomNotFound)
	ErrHallNotFound     = NewNotFoundError("Hall not found", ErrCodeHallNotFound)
	ErrMenuItemNotFound = NewNotFoundError("Menu item not found", ErrCodeMenuItemNotFound)
	ErrOrderNotFound    = NewNotFoundError("Order not found", ErrCodeOrderNotFound)
	ErrBookingNotFound  = NewNotFoundError("Booking not found", ErrCodeBookingNotFound)

	ErrPaymentFailed = &AppError{
		Type:       ErrorTypeExternal,
		Code:       ErrCodePaymentFailed,
		Message:    "Payment initiation failed",
		StatusCode: http.StatusBadGateway,
	}
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

type Response struct {
	Error *AppError `json:"error"`
}

func (e *AppError) ToHTTPResponse() (int, interface{}) {
	return e.StatusCode, Response{Error: e}
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType   `json:"type"`
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}
