package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/megapark/hotel-backend/internal"
	"github.com/megapark/hotel-backend/internal/transport"
	"github.com/megapark/hotel-backend/pkg/logger"
)

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

// Login handles POST /auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.Service.Authenticate(dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			h.WriteAppError(w, internal.ErrInvalidCredentials)
		default:
			h.HandleServiceError(w, err)
		}
		return
	}

	h.WriteJSON(w, http.StatusOK, result)
}

// RefreshToken handles POST /auth/refresh. All verification failures map to
// the same opaque response.
func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var dto RefreshTokenDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if dto.RefreshToken == "" {
		h.WriteError(w, http.StatusBadRequest, "Refresh token required")
		return
	}

	tokens, err := h.Service.RefreshTokens(dto.RefreshToken)
	if err != nil {
		h.WriteAppError(w, internal.ErrInvalidRefreshToken)
		return
	}

	h.WriteJSON(w, http.StatusOK, tokens)
}

// Logout handles POST /auth/logout. Tokens are stateless so this is purely
// advisory: the client clears its stored pair, but an issued token remains
// valid until natural expiry.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Logger.Info("user logged out")
	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// AuthMiddleware verifies the bearer token and attaches the decoded identity
// to the request context. An expired token gets a distinct machine-readable
// code so clients know to attempt a refresh. Token contents are never logged.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.WriteAppError(w, internal.ErrMissingToken)
			return
		}

		claims, err := h.Service.ValidateAccessToken(token)
		if err != nil {
			if errors.Is(err, ErrTokenExpired) {
				h.WriteAppError(w, internal.ErrTokenExpired)
				return
			}
			h.WriteAppError(w, internal.ErrInvalidToken)
			return
		}

		identity := &Identity{
			ID:    claims.UserID,
			Email: claims.Email,
			Role:  claims.Role,
		}

		ctx := ContextWithIdentity(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
