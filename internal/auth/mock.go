package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/megapark/hotel-backend/internal"
)

// MockCredentialStore is an in-memory store holding the fallback admin
// account. Passwords are hashed at construction: even seed users never keep
// a plaintext representation.
type MockCredentialStore struct {
	users map[string]*Credential
}

// NewMockCredentialStore seeds the store with the default admin account
// (admin@megapark.com / admin123).
func NewMockCredentialStore() *MockCredentialStore {
	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)

	return &MockCredentialStore{
		users: map[string]*Credential{
			"admin@megapark.com": {
				ID:           "admin-001",
				Email:        "admin@megapark.com",
				Name:         "Admin User",
				Role:         RoleAdmin,
				PasswordHash: string(hash),
			},
		},
	}
}

// Add registers an extra user with the given plaintext password, hashing it
// immediately. Intended for tests.
func (s *MockCredentialStore) Add(id, email, name, role, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	s.users[email] = &Credential{
		ID:           id,
		Email:        email,
		Name:         name,
		Role:         role,
		PasswordHash: string(hash),
	}
	return nil
}

func (s *MockCredentialStore) GetByEmail(email string) (*Credential, error) {
	if cred, ok := s.users[email]; ok {
		return cred, nil
	}
	return nil, internal.ErrUserNotFound
}
