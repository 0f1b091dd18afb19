package rest

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/megapark/hotel-backend/internal/auth"
	"github.com/megapark/hotel-backend/internal/booking"
	"github.com/megapark/hotel-backend/internal/hall"
	"github.com/megapark/hotel-backend/internal/menu"
	"github.com/megapark/hotel-backend/internal/order"
	"github.com/megapark/hotel-backend/internal/payment"
	"github.com/megapark/hotel-backend/internal/room"
	"github.com/megapark/hotel-backend/internal/transport/middleware"
	"github.com/megapark/hotel-backend/internal/transport/swagger"
	"github.com/megapark/hotel-backend/internal/user"
)

type Handlers struct {
	Auth    *auth.Handler
	Users   *user.Handler
	Rooms   *room.Handler
	Halls   *hall.Handler
	Menu    *menu.Handler
	Orders  *order.Handler
	Booking *booking.Handler
	Payment *payment.Handler
}

// Rate limits, counted per client IP over a fixed window. Login and refresh
// get the tightest budget since they are the brute-force surface; the data
// endpoints share a looser one on top of the global ceiling.
const (
	rateLimitWindow  = 15 * time.Minute
	globalRateLimit  = 1000
	authRateLimit    = 10
	catalogRateLimit = 300
)

// RegisterAllRoutes mounts the public site API under /api. Reads on rooms,
// halls and menu are public so the website can render without a session;
// every write goes through the auth middleware and the role gate.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, dataDir string, h Handlers, gate *auth.RoleGate, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db, dataDir)

	authLimiter := middleware.NewRateLimiter(authRateLimit, rateLimitWindow)
	apiLimiter := middleware.NewRateLimiter(catalogRateLimit, rateLimitWindow)

	router.Use(middleware.SecurityHeaders)
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.NewRateLimiter(globalRateLimit, rateLimitWindow).Handler)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// OpenAPI spec and Swagger UI live outside the API prefix
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.HealthCheckHandler)
		r.Get("/ping", healthHandler.PingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.With(authLimiter.Handler).Post("/login", h.Auth.Login)
			sr.With(authLimiter.Handler).Post("/refresh", h.Auth.RefreshToken)
			sr.Post("/logout", h.Auth.Logout)
		})

		r.Group(func(cr chi.Router) {
			cr.Use(apiLimiter.Handler)

			// Public catalogue reads
			cr.Get("/rooms", h.Rooms.List)
			cr.Get("/rooms/{id}", h.Rooms.Get)
			cr.Get("/halls", h.Halls.List)
			cr.Get("/halls/{id}", h.Halls.Get)
			cr.Post("/halls/quote", h.Halls.Quote)
			cr.Get("/menu", h.Menu.List)
			cr.Get("/menu/{id}", h.Menu.Get)

			// Walk-in order placement and checkout need no session
			cr.Post("/orders", h.Orders.Create)
			cr.Post("/payments/intent", h.Payment.CreateIntent)
			cr.Post("/payments/callback", h.Payment.Callback)
		})

		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			// Any authenticated user may hit this; the service decides
			// whether the caller owns the account or is an admin.
			pr.Post("/admin/users/{id}/password", h.Users.ChangePassword)

			pr.Group(func(sr chi.Router) {
				sr.Use(apiLimiter.Handler)
				sr.Use(gate.RequireStaff())

				sr.Post("/rooms", h.Rooms.Create)
				sr.Put("/rooms/{id}", h.Rooms.Update)
				sr.Delete("/rooms/{id}", h.Rooms.Delete)

				sr.Post("/halls", h.Halls.Create)
				sr.Put("/halls/{id}", h.Halls.Update)
				sr.Delete("/halls/{id}", h.Halls.Delete)

				sr.Post("/menu", h.Menu.Create)
				sr.Put("/menu/{id}", h.Menu.Update)
				sr.Delete("/menu/{id}", h.Menu.Delete)

				sr.Get("/orders", h.Orders.List)
				sr.Get("/orders/{id}", h.Orders.Get)
				sr.Put("/orders/{id}", h.Orders.Update)

				sr.Get("/bookings", h.Booking.List)
				sr.Get("/bookings/{id}", h.Booking.Get)
			})

			pr.Group(func(ar chi.Router) {
				ar.Use(gate.RequireAdmin())

				ar.Route("/admin/users", func(ur chi.Router) {
					ur.Get("/", h.Users.List)
					ur.Post("/", h.Users.Create)
					ur.Put("/{id}", h.Users.Update)
					ur.Delete("/{id}", h.Users.Delete)
				})
			})
		})
	})
}
