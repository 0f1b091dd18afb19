package rest_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/megapark/hotel-backend/internal/auth"
	"github.com/megapark/hotel-backend/internal/booking"
	"github.com/megapark/hotel-backend/internal/core/events"
	"github.com/megapark/hotel-backend/internal/email"
	"github.com/megapark/hotel-backend/internal/hall"
	"github.com/megapark/hotel-backend/internal/menu"
	"github.com/megapark/hotel-backend/internal/order"
	"github.com/megapark/hotel-backend/internal/payment"
	"github.com/megapark/hotel-backend/internal/payment/mpesa"
	"github.com/megapark/hotel-backend/internal/room"
	"github.com/megapark/hotel-backend/internal/transport/rest"
	"github.com/megapark/hotel-backend/internal/user"
)

func TestRouter(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "REST Router Suite")
}

// low cost keeps the bcrypt hashing fast under test
const testBcryptCost = 4

var _ = ginkgo.Describe("Router", func() {
	var (
		router   *chi.Mux
		tokenGen *auth.JWTTokenGenerator
		staff    *user.User
	)

	request := func(method, path, token, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	ginkgo.BeforeEach(func() {
		dataDir := ginkgo.GinkgoT().TempDir()
		lg := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		creds, err := auth.NewFileCredentialStore(dataDir)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		users, err := user.NewFileRepository(dataDir)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(users.EnsureSeedAdmin(testBcryptCost)).To(gomega.Succeed())
		rooms, err := room.NewFileRepository(dataDir)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		halls, err := hall.NewFileRepository(dataDir)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		menuItems, err := menu.NewFileRepository(dataDir)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		orders, err := order.NewFileRepository(dataDir)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		bookings, err := booking.NewFileRepository(dataDir)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		tokenGen = auth.NewJWTTokenGenerator("access-test-secret", "refresh-test-secret", 15*time.Minute, time.Hour)
		authService := auth.NewService(creds, tokenGen, lg)
		gate := auth.NewRoleGate(lg)

		bus := events.NewBus(lg)
		bookingService := booking.NewService(bookings, lg)
		bookingService.RegisterEventHandlers(bus)

		userService := user.NewService(users, testBcryptCost, lg)
		mailer := email.NewLogSender(lg, "noreply@megapark-hotel.com")
		gateway := mpesa.NewClient("", "", 0, lg)

		handlers := rest.Handlers{
			Auth:    auth.NewHandler(authService),
			Users:   user.NewHandler(userService),
			Rooms:   room.NewHandler(room.NewService(rooms, lg)),
			Halls:   hall.NewHandler(hall.NewService(halls, mailer, "sales@megapark-hotel.com", lg)),
			Menu:    menu.NewHandler(menu.NewService(menuItems, lg)),
			Orders:  order.NewHandler(order.NewService(orders, lg)),
			Booking: booking.NewHandler(bookingService),
			Payment: payment.NewHandler(payment.NewService(bookings, gateway, bus, lg)),
		}

		staff, err = userService.Create(&user.CreateUserDTO{
			Email:    "frontdesk@megapark.com",
			Password: "frontdesk1",
			Name:     "Front Desk",
			Role:     auth.RoleStaff,
		})
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		router = chi.NewRouter()
		rest.RegisterAllRoutes(router, nil, dataDir, handlers, gate, "*", lg)
	})

	ginkgo.Describe("password change route", func() {
		ginkgo.It("should let a staff user change their own password", func() {
			token, err := tokenGen.GenerateAccessToken(staff.ID, staff.Email, auth.RoleStaff)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			rec := request(http.MethodPost, "/api/admin/users/"+staff.ID+"/password", token,
				`{"currentPassword":"frontdesk1","newPassword":"frontdesk2"}`)
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))

			login := request(http.MethodPost, "/api/auth/login", "",
				`{"email":"frontdesk@megapark.com","password":"frontdesk2"}`)
			gomega.Expect(login.Code).To(gomega.Equal(http.StatusOK))
		})

		ginkgo.It("should refuse a staff user changing someone else's password", func() {
			token, err := tokenGen.GenerateAccessToken(staff.ID, staff.Email, auth.RoleStaff)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			rec := request(http.MethodPost, "/api/admin/users/admin-001/password", token,
				`{"currentPassword":"admin123","newPassword":"replacement1"}`)
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusForbidden))
		})

		ginkgo.It("should let an admin set another user's password without the current one", func() {
			token, err := tokenGen.GenerateAccessToken("admin-001", "admin@megapark.com", auth.RoleAdmin)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			rec := request(http.MethodPost, "/api/admin/users/"+staff.ID+"/password", token,
				`{"newPassword":"resetbyadmin1"}`)
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
		})

		ginkgo.It("should still require a token", func() {
			rec := request(http.MethodPost, "/api/admin/users/"+staff.ID+"/password", "",
				`{"currentPassword":"frontdesk1","newPassword":"frontdesk2"}`)
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
		})
	})

	ginkgo.Describe("admin user management", func() {
		ginkgo.It("should keep user listing admin-only", func() {
			token, err := tokenGen.GenerateAccessToken(staff.ID, staff.Email, auth.RoleStaff)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			rec := request(http.MethodGet, "/api/admin/users", token, "")
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusForbidden))
		})
	})

	ginkgo.Describe("rate limited auth endpoints", func() {
		ginkgo.It("should throttle repeated login attempts", func() {
			var last *httptest.ResponseRecorder
			for i := 0; i < 11; i++ {
				last = request(http.MethodPost, "/api/auth/login", "",
					`{"email":"nobody@megapark.com","password":"wrongpass1"}`)
			}
			gomega.Expect(last.Code).To(gomega.Equal(http.StatusTooManyRequests))
			gomega.Expect(last.Body.String()).To(gomega.ContainSubstring("Too many requests"))
		})
	})

	ginkgo.Describe("security headers", func() {
		ginkgo.It("should be present on API responses", func() {
			rec := request(http.MethodGet, "/api/rooms", "", "")
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(rec.Header().Get("X-Content-Type-Options")).To(gomega.Equal("nosniff"))
			gomega.Expect(rec.Header().Get("X-Frame-Options")).To(gomega.Equal("DENY"))
		})
	})
})
