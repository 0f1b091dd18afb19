package auth

import (
	"log/slog"
	"net/http"

	"github.com/megapark/hotel-backend/internal"
	"github.com/megapark/hotel-backend/internal/transport"
)

// RoleGate is the per-operation authorization check. It runs after the auth
// middleware, so a missing identity means the route was wired without it;
// that still fails closed with a 401. A present identity with the wrong role
// fails with 403, distinct from any authentication failure.
type RoleGate struct {
	base   *transport.BaseHandler
	logger *slog.Logger
}

func NewRoleGate(logger *slog.Logger) *RoleGate {
	return &RoleGate{
		base:   transport.NewBaseHandler(logger),
		logger: logger,
	}
}

// RequireAdmin gates admin-only operations such as user management.
func (g *RoleGate) RequireAdmin() func(http.Handler) http.Handler {
	return g.require(func(id *Identity) bool { return id.IsAdmin() }, internal.ErrAdminRequired)
}

// RequireStaff gates operations any back-office user may perform; admins
// pass as well.
func (g *RoleGate) RequireStaff() func(http.Handler) http.Handler {
	return g.require(func(id *Identity) bool { return id.IsStaff() }, internal.ErrStaffRequired)
}

func (g *RoleGate) require(allowed func(*Identity) bool, denial *internal.AppError) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok || identity == nil {
				g.logger.Warn("role gate: identity not found in context")
				g.base.WriteAppError(w, internal.ErrMissingToken)
				return
			}

			if !allowed(identity) {
				g.logger.Warn("access denied: insufficient role",
					"user_id", identity.ID,
					"role", identity.Role)
				g.base.WriteAppError(w, denial)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
