package room

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/megapark/hotel-backend/internal/transport"
	"github.com/megapark/hotel-backend/pkg/logger"
)

type ServiceAPI interface {
	List() ([]*Room, error)
	Get(id string) (*Room, error)
	Create(dto *CreateRoomDTO) (*Room, error)
	Update(id string, dto *UpdateRoomDTO) (*Room, error)
	Delete(id string) error
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

// List handles GET /rooms (public).
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.Service.List()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, rooms)
}

// Get handles GET /rooms/{id} (public).
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	rm, err := h.Service.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, rm)
}

// Create handles POST /rooms.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateRoomDTO
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

// Update handles PUT /rooms/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var dto UpdateRoomDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.Service.Update(chi.URLParam(r, "id"), &dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /rooms/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(chi.URLParam(r, "id")); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
