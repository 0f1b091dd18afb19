package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("AuthHandler", func() {
	var (
		handler  *Handler
		service  *Service
		tokenGen *JWTTokenGenerator
		store    *MockCredentialStore
	)

	login := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		handler.Login(rec, req)
		return rec
	}

	ginkgo.BeforeEach(func() {
		store = NewMockCredentialStore()
		tokenGen = NewJWTTokenGenerator("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
		service = NewService(store, tokenGen, testLogger())
		handler = NewHandler(service)
	})

	ginkgo.Describe("Login", func() {
		ginkgo.It("should return the token pair with the camelCase wire shape", func() {
			rec := login(`{"email":"admin@megapark.com","password":"admin123"}`)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))

			var body map[string]json.RawMessage
			gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(gomega.Succeed())
			gomega.Expect(body).To(gomega.HaveKey("accessToken"))
			gomega.Expect(body).To(gomega.HaveKey("refreshToken"))
			gomega.Expect(body).To(gomega.HaveKey("user"))

			var user map[string]string
			gomega.Expect(json.Unmarshal(body["user"], &user)).To(gomega.Succeed())
			gomega.Expect(user["id"]).To(gomega.Equal("admin-001"))
			gomega.Expect(user["role"]).To(gomega.Equal(RoleAdmin))
			gomega.Expect(user).ToNot(gomega.HaveKey("passwordHash"))
		})

		ginkgo.It("should return 401 with Invalid credentials for a wrong password", func() {
			rec := login(`{"email":"admin@megapark.com","password":"wrong"}`)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring("Invalid credentials"))
		})

		ginkgo.It("should return 400 for a malformed body", func() {
			rec := login(`{not json`)
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusBadRequest))
		})
	})

	ginkgo.Describe("RefreshToken", func() {
		ginkgo.It("should return 400 when the refresh token is missing", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", bytes.NewBufferString(`{}`))
			rec := httptest.NewRecorder()
			handler.RefreshToken(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusBadRequest))
			gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring("Refresh token required"))
		})

		ginkgo.It("should return 401 with the opaque message for a bad token", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", bytes.NewBufferString(`{"refreshToken":"garbage"}`))
			rec := httptest.NewRecorder()
			handler.RefreshToken(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring("Invalid refresh token"))
		})

		ginkgo.It("should return a new pair for a valid refresh token", func() {
			tokens, err := tokenGen.GenerateTokenPair("admin-001", "admin@megapark.com", RoleAdmin)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			payload, _ := json.Marshal(map[string]string{"refreshToken": tokens.RefreshToken})
			req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", bytes.NewBuffer(payload))
			rec := httptest.NewRecorder()
			handler.RefreshToken(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring("accessToken"))
			gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring("refreshToken"))
		})
	})

	ginkgo.Describe("Logout", func() {
		ginkgo.It("should always succeed without requiring a token", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
			rec := httptest.NewRecorder()
			handler.Logout(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring("Logged out successfully"))
		})
	})

	ginkgo.Describe("AuthMiddleware", func() {
		var protected http.Handler

		ginkgo.BeforeEach(func() {
			protected = handler.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				identity, ok := IdentityFromContext(r.Context())
				gomega.Expect(ok).To(gomega.BeTrue())
				w.Write([]byte(identity.Email))
			}))
		})

		ginkgo.It("should return 401 when the Authorization header is missing", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring("Unauthorized: missing or invalid token"))
		})

		ginkgo.It("should return 401 for a token that is not Bearer shaped", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
			req.Header.Set("Authorization", "Basic abc123")
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
		})

		ginkgo.It("should return the TOKEN_EXPIRED code for an expired token so clients refresh", func() {
			expiredGen := NewJWTTokenGenerator("access-secret", "refresh-secret", -time.Minute, time.Hour)
			token, err := expiredGen.GenerateAccessToken("admin-001", "admin@megapark.com", RoleAdmin)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring("TOKEN_EXPIRED"))
		})

		ginkgo.It("should attach the identity for a valid token", func() {
			token, err := tokenGen.GenerateAccessToken("admin-001", "admin@megapark.com", RoleAdmin)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(rec.Body.String()).To(gomega.Equal("admin@megapark.com"))
		})
	})
})
