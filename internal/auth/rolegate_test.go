package auth

import (
	"net/http"
	"net/http/httptest"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("RoleGate", func() {
	var (
		gate *RoleGate
		ok   http.Handler
	)

	serveAs := func(mw func(http.Handler) http.Handler, identity *Identity) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
		if identity != nil {
			req = req.WithContext(ContextWithIdentity(req.Context(), identity))
		}
		rec := httptest.NewRecorder()
		mw(ok).ServeHTTP(rec, req)
		return rec
	}

	ginkgo.BeforeEach(func() {
		gate = NewRoleGate(testLogger())
		ok = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})

	ginkgo.Describe("RequireAdmin", func() {
		ginkgo.It("should pass an admin through", func() {
			rec := serveAs(gate.RequireAdmin(), &Identity{ID: "admin-001", Role: RoleAdmin})
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
		})

		ginkgo.It("should return 403, not 401, for an authenticated staff user", func() {
			rec := serveAs(gate.RequireAdmin(), &Identity{ID: "user-1", Role: RoleStaff})
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusForbidden))
			gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring("Admin access required"))
		})

		ginkgo.It("should return 401 when no identity is attached", func() {
			rec := serveAs(gate.RequireAdmin(), nil)
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
		})
	})

	ginkgo.Describe("RequireStaff", func() {
		ginkgo.It("should pass both staff and admin through", func() {
			gomega.Expect(serveAs(gate.RequireStaff(), &Identity{ID: "user-1", Role: RoleStaff}).Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(serveAs(gate.RequireStaff(), &Identity{ID: "admin-001", Role: RoleAdmin}).Code).To(gomega.Equal(http.StatusOK))
		})

		ginkgo.It("should return 403 for an unknown role", func() {
			rec := serveAs(gate.RequireStaff(), &Identity{ID: "user-2", Role: "guest"})
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusForbidden))
		})
	})
})
