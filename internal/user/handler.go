package user

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/megapark/hotel-backend/internal"
	"github.com/megapark/hotel-backend/internal/auth"
	"github.com/megapark/hotel-backend/internal/transport"
	"github.com/megapark/hotel-backend/pkg/logger"
)

type ServiceAPI interface {
	List() ([]*User, error)
	Create(dto *CreateUserDTO) (*User, error)
	Update(id string, dto *UpdateUserDTO) (*User, error)
	Delete(id string, actor *auth.Identity) error
	ChangePassword(id string, actor *auth.Identity, dto *ChangePasswordDTO) error
}

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

// List handles GET /admin/users.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.List()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, users)
}

// Create handles POST /admin/users.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.Create(&dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, created)
}

// Update handles PUT /admin/users/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var dto UpdateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.Service.Update(id, &dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /admin/users/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok || identity == nil {
		h.WriteAppError(w, internal.ErrMissingToken)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.Service.Delete(id, identity); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}

// ChangePassword handles POST /admin/users/{id}/password. Ownership versus
// admin policy is enforced in the service.
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok || identity == nil {
		h.WriteAppError(w, internal.ErrMissingToken)
		return
	}

	id := chi.URLParam(r, "id")

	var dto ChangePasswordDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.ChangePassword(id, identity, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Password updated successfully"})
}
