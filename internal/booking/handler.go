package booking

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

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

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Service.ListBookings()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, bookings)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.Service.GetBooking(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, b)
}
