package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Service is the main auth service with dependencies
type Service struct {
	store    CredentialStore
	tokenGen TokenGeneratorAPI
	logger   *slog.Logger
}

// NewService creates a new auth service
func NewService(store CredentialStore, tokenGen TokenGeneratorAPI, logger *slog.Logger) *Service {
	return &Service{
		store:    store,
		tokenGen: tokenGen,
		logger:   logger,
	}
}

// NewJWTTokenGenerator creates a token generator with distinct access and
// refresh secrets.
func NewJWTTokenGenerator(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *JWTTokenGenerator {
	return &JWTTokenGenerator{
		AccessTokenSecret:  []byte(accessSecret),
		RefreshTokenSecret: []byte(refreshSecret),
		AccessTokenTTL:     accessTTL,
		RefreshTokenTTL:    refreshTTL,
	}
}

// Authenticate validates credentials and returns a token pair plus the safe
// user projection. A missing user and a wrong password are indistinguishable
// to the caller.
func (s *Service) Authenticate(dto LoginDTO) (LoginResult, error) {
	if err := dto.Validate(); err != nil {
		return LoginResult{}, err
	}

	cred, err := s.store.GetByEmail(dto.Email)
	if err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(dto.Password)); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	tokens, err := s.tokenGen.GenerateTokenPair(cred.ID, cred.Email, cred.Role)
	if err != nil {
		return LoginResult{}, err
	}

	s.logger.Info("user logged in", "email", cred.Email)

	return LoginResult{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User: UserView{
			ID:    cred.ID,
			Email: cred.Email,
			Name:  cred.Name,
			Role:  cred.Role,
		},
	}, nil
}

// RefreshTokens verifies a refresh token and re-issues a full pair from the
// identity claims embedded in it. No store lookup happens here: a refresh
// token stays usable until expiry even if the account was deactivated in
// the meantime, matching the documented stateless-token limitation.
func (s *Service) RefreshTokens(refreshToken string) (AuthTokens, error) {
	claims, err := s.tokenGen.ValidateRefreshToken(refreshToken)
	if err != nil {
		return AuthTokens{}, ErrInvalidRefreshToken
	}

	tokens, err := s.tokenGen.GenerateTokenPair(claims.UserID, claims.Email, claims.Role)
	if err != nil {
		return AuthTokens{}, ErrInvalidRefreshToken
	}

	s.logger.Info("token refreshed", "user_id", claims.UserID)

	return tokens, nil
}

// ValidateAccessToken validates an access token and returns its claims.
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGen.ValidateAccessToken(tokenString)
}

// GenerateAccessToken creates a short-lived access token.
func (j *JWTTokenGenerator) GenerateAccessToken(id, email, role string) (string, error) {
	return j.generate(id, email, role, TokenTypeAccess, j.AccessTokenSecret, j.AccessTokenTTL)
}

// GenerateRefreshToken creates a long-lived refresh token signed with the
// refresh secret.
func (j *JWTTokenGenerator) GenerateRefreshToken(id, email, role string) (string, error) {
	return j.generate(id, email, role, TokenTypeRefresh, j.RefreshTokenSecret, j.RefreshTokenTTL)
}

// GenerateTokenPair issues both tokens for one identity.
func (j *JWTTokenGenerator) GenerateTokenPair(id, email, role string) (AuthTokens, error) {
	accessToken, err := j.GenerateAccessToken(id, email, role)
	if err != nil {
		return AuthTokens{}, err
	}

	refreshToken, err := j.GenerateRefreshToken(id, email, role)
	if err != nil {
		return AuthTokens{}, err
	}

	return AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (j *JWTTokenGenerator) generate(id, email, role, tokenType string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := &Claims{
		UserID: id,
		Email:  email,
		Role:   role,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   id,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateAccessToken verifies signature and expiry against the access
// secret and rejects any token whose type claim is not "access". Expired
// tokens fail with ErrTokenExpired so the middleware can tell clients to
// refresh; everything else collapses to ErrInvalidToken.
func (j *JWTTokenGenerator) ValidateAccessToken(tokenString string) (*Claims, error) {
	claims, err := j.parse(tokenString, j.AccessTokenSecret)
	if err != nil {
		return nil, err
	}

	if claims.Type != TokenTypeAccess {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ValidateRefreshToken verifies against the refresh secret and rejects any
// token whose type claim is not "refresh". All failures, expiry included,
// collapse to ErrInvalidRefreshToken: the refresh path never reveals why a
// token was rejected.
func (j *JWTTokenGenerator) ValidateRefreshToken(tokenString string) (*Claims, error) {
	claims, err := j.parse(tokenString, j.RefreshTokenSecret)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	if claims.Type != TokenTypeRefresh {
		return nil, ErrInvalidRefreshToken
	}

	return claims, nil
}

func (j *JWTTokenGenerator) parse(tokenString string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
