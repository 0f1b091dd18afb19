package auth

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestAuth(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Module Suite")
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

var _ = ginkgo.Describe("AuthService", func() {
	var (
		service       *Service
		store         *MockCredentialStore
		tokenGen      *JWTTokenGenerator
		logger        *slog.Logger
		accessSecret  = "test-access-secret"
		refreshSecret = "test-refresh-secret"
		accessTTL     = 15 * time.Minute
		refreshTTL    = 24 * time.Hour
	)

	ginkgo.BeforeEach(func() {
		logger = testLogger()
		store = NewMockCredentialStore()
		tokenGen = NewJWTTokenGenerator(accessSecret, refreshSecret, accessTTL, refreshTTL)
		service = NewService(store, tokenGen, logger)
	})

	ginkgo.Describe("Authenticate", func() {
		ginkgo.Context("when credentials are valid", func() {
			ginkgo.It("should return a token pair and the user projection", func() {
				result, err := service.Authenticate(LoginDTO{
					Email:    "admin@megapark.com",
					Password: "admin123",
				})

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(result.AccessToken).ToNot(gomega.BeEmpty())
				gomega.Expect(result.RefreshToken).ToNot(gomega.BeEmpty())
				gomega.Expect(result.AccessToken).ToNot(gomega.Equal(result.RefreshToken))
				gomega.Expect(result.User.ID).To(gomega.Equal("admin-001"))
				gomega.Expect(result.User.Role).To(gomega.Equal(RoleAdmin))
			})

			ginkgo.It("should emit an access token that validates with the expected claims", func() {
				result, err := service.Authenticate(LoginDTO{
					Email:    "admin@megapark.com",
					Password: "admin123",
				})
				gomega.Expect(err).ToNot(gomega.HaveOccurred())

				claims, err := service.ValidateAccessToken(result.AccessToken)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(claims.UserID).To(gomega.Equal("admin-001"))
				gomega.Expect(claims.Email).To(gomega.Equal("admin@megapark.com"))
				gomega.Expect(claims.Role).To(gomega.Equal(RoleAdmin))
				gomega.Expect(claims.Type).To(gomega.Equal(TokenTypeAccess))
			})
		})

		ginkgo.Context("when credentials are invalid", func() {
			ginkgo.It("should return the same error for an unknown email as for a wrong password", func() {
				_, unknownErr := service.Authenticate(LoginDTO{
					Email:    "nobody@megapark.com",
					Password: "whatever1",
				})
				_, wrongPwErr := service.Authenticate(LoginDTO{
					Email:    "admin@megapark.com",
					Password: "not-the-password",
				})

				gomega.Expect(unknownErr).To(gomega.Equal(ErrInvalidCredentials))
				gomega.Expect(wrongPwErr).To(gomega.Equal(ErrInvalidCredentials))
			})
		})

		ginkgo.Context("when input validation fails", func() {
			ginkgo.It("should reject a malformed email", func() {
				_, err := service.Authenticate(LoginDTO{
					Email:    "not-an-email",
					Password: "password",
				})
				gomega.Expect(err).To(gomega.HaveOccurred())
			})

			ginkgo.It("should reject an empty password", func() {
				_, err := service.Authenticate(LoginDTO{
					Email:    "admin@megapark.com",
					Password: "",
				})
				gomega.Expect(err).To(gomega.HaveOccurred())
			})
		})
	})

	ginkgo.Describe("RefreshTokens", func() {
		ginkgo.It("should issue a fresh pair for a valid refresh token", func() {
			result, err := service.Authenticate(LoginDTO{
				Email:    "admin@megapark.com",
				Password: "admin123",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			tokens, err := service.RefreshTokens(result.RefreshToken)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(tokens.AccessToken).ToNot(gomega.BeEmpty())
			gomega.Expect(tokens.RefreshToken).ToNot(gomega.BeEmpty())

			claims, err := service.ValidateAccessToken(tokens.AccessToken)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(claims.UserID).To(gomega.Equal("admin-001"))
		})

		ginkgo.It("should reject garbage with the opaque refresh error", func() {
			_, err := service.RefreshTokens("not.a.jwt")
			gomega.Expect(err).To(gomega.Equal(ErrInvalidRefreshToken))
		})

		ginkgo.It("should reject an access token presented as a refresh token", func() {
			result, err := service.Authenticate(LoginDTO{
				Email:    "admin@megapark.com",
				Password: "admin123",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.RefreshTokens(result.AccessToken)
			gomega.Expect(err).To(gomega.Equal(ErrInvalidRefreshToken))
		})
	})
})

var _ = ginkgo.Describe("JWTTokenGenerator", func() {
	var tokenGen *JWTTokenGenerator

	ginkgo.BeforeEach(func() {
		tokenGen = NewJWTTokenGenerator("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	})

	ginkgo.It("should round-trip identity claims through an access token", func() {
		token, err := tokenGen.GenerateAccessToken("user-42", "staff@megapark.com", RoleStaff)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		claims, err := tokenGen.ValidateAccessToken(token)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(claims.UserID).To(gomega.Equal("user-42"))
		gomega.Expect(claims.Email).To(gomega.Equal("staff@megapark.com"))
		gomega.Expect(claims.Role).To(gomega.Equal(RoleStaff))
	})

	ginkgo.It("should reject a refresh token on the access path even though the type claim is the only difference", func() {
		sameSecret := NewJWTTokenGenerator("shared", "shared", 15*time.Minute, 24*time.Hour)

		refresh, err := sameSecret.GenerateRefreshToken("user-42", "staff@megapark.com", RoleStaff)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		_, err = sameSecret.ValidateAccessToken(refresh)
		gomega.Expect(err).To(gomega.Equal(ErrInvalidToken))
	})

	ginkgo.It("should reject tokens signed with a different secret", func() {
		other := NewJWTTokenGenerator("other-secret", "other-refresh", 15*time.Minute, 24*time.Hour)

		token, err := other.GenerateAccessToken("user-42", "staff@megapark.com", RoleStaff)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		_, err = tokenGen.ValidateAccessToken(token)
		gomega.Expect(err).To(gomega.Equal(ErrInvalidToken))
	})

	ginkgo.It("should report an expired access token as expired, not invalid", func() {
		shortLived := NewJWTTokenGenerator("access-secret", "refresh-secret", -time.Minute, 24*time.Hour)

		token, err := shortLived.GenerateAccessToken("user-42", "staff@megapark.com", RoleStaff)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		_, err = tokenGen.ValidateAccessToken(token)
		gomega.Expect(err).To(gomega.Equal(ErrTokenExpired))
	})

	ginkgo.It("should collapse expiry to the opaque error on the refresh path", func() {
		shortLived := NewJWTTokenGenerator("access-secret", "refresh-secret", 15*time.Minute, -time.Minute)

		token, err := shortLived.GenerateRefreshToken("user-42", "staff@megapark.com", RoleStaff)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		_, err = tokenGen.ValidateRefreshToken(token)
		gomega.Expect(err).To(gomega.Equal(ErrInvalidRefreshToken))
	})
})
