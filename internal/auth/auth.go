package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Roles carried in the token. There is no finer-grained permission table:
// every protected operation is gated on one of these two values.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// Token types embedded as a claim. Signature verification under the right
// secret already separates the two token kinds; the type claim is an
// additional explicit guard so a refresh token is never accepted where an
// access token is expected, and vice versa.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims is the signed identity payload.
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Type   string `json:"type"`
	jwt.RegisteredClaims
}

// Identity is the decoded caller attached to the request context by the
// auth middleware.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (i *Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

func (i *Identity) IsStaff() bool {
	return i.Role == RoleAdmin || i.Role == RoleStaff
}

// Credential is a user record as the login flow sees it.
type Credential struct {
	ID           string
	Email        string
	Name         string
	Role         string
	PasswordHash string
}

// CredentialStore looks up user records for credential verification.
type CredentialStore interface {
	GetByEmail(email string) (*Credential, error)
}

// AuthTokens is the token pair shape returned by refresh.
type AuthTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// UserView is the safe user projection returned by login. The password hash
// is never part of any response.
type UserView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// LoginResult is the full login response body.
type LoginResult struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	User         UserView `json:"user"`
}

// TokenGeneratorAPI issues and verifies signed, time-bound claims.
type TokenGeneratorAPI interface {
	GenerateAccessToken(id, email, role string) (string, error)
	GenerateRefreshToken(id, email, role string) (string, error)
	GenerateTokenPair(id, email, role string) (AuthTokens, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	ValidateRefreshToken(tokenString string) (*Claims, error)
}

// ServiceAPI performs authentication-related business logic.
type ServiceAPI interface {
	Authenticate(dto LoginDTO) (LoginResult, error)
	RefreshTokens(refreshToken string) (AuthTokens, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
}

// JWTTokenGenerator signs access and refresh tokens with two distinct
// secrets. Tokens are stateless: there is no server-side revocation, so a
// token stays valid until natural expiry even after logout.
type JWTTokenGenerator struct {
	AccessTokenSecret  []byte
	RefreshTokenSecret []byte
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration
}

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

type ctxKey string

const identityKey ctxKey = "identity"

// ContextWithIdentity attaches the decoded caller to the request context.
func ContextWithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the decoded caller, if the auth middleware ran.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey).(*Identity)
	return id, ok
}
