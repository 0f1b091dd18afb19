package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/megapark/hotel-backend/internal"
	"github.com/megapark/hotel-backend/pkg/logger"
)

// BaseHandler provides common functionality for HTTP handlers
type BaseHandler struct {
	Logger *slog.Logger
}

// NewBaseHandler creates a base handler with logger
func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.LoggerWrapper()
		if lg == nil {
			lg = slog.Default()
		}
	}
	return &BaseHandler{Logger: lg}
}

// ErrorBody is the wire shape for error responses. Code is machine-readable
// so clients can distinguish an expired access token from a generally
// invalid one and decide whether to attempt a refresh.
type ErrorBody struct {
	Error   string      `json:"error"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// WriteJSON writes a JSON response
func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes a plain error response
func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, message string) {
	h.Logger.Warn("http error", "status", status, "message", message)
	h.WriteJSON(w, status, ErrorBody{Error: message})
}

// WriteAppError writes an AppError with its status, code and details.
func (h *BaseHandler) WriteAppError(w http.ResponseWriter, appErr *internal.AppError) {
	h.Logger.Warn("http error", "status", appErr.StatusCode, "code", appErr.Code, "message", appErr.Message)
	h.WriteJSON(w, appErr.StatusCode, ErrorBody{
		Error:   appErr.Message,
		Code:    string(appErr.Code),
		Details: appErr.Details,
	})
}

// HandleServiceError maps a service-layer error onto an HTTP response.
// Unexpected errors collapse to a generic 500 with no internal detail.
func (h *BaseHandler) HandleServiceError(w http.ResponseWriter, err error) {
	if appErr, ok := internal.IsAppError(err); ok {
		h.WriteAppError(w, appErr)
		return
	}
	h.Logger.Error("unexpected service error", "error", err)
	h.WriteError(w, http.StatusInternalServerError, "Internal server error")
}

// ExtractTokenFromHeader extracts the bearer token from the Authorization
// header, returning "" when the header is absent or not of the Bearer form.
func (h *BaseHandler) ExtractTokenFromHeader(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ""
	}

	return authHeader[7:]
}
