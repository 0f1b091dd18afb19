package auth

import (
	"github.com/megapark/hotel-backend/internal"
	"github.com/megapark/hotel-backend/internal/storage/jsonstore"
)

// storedUser mirrors the user records in the admin-users collection. Only
// the fields credential verification needs are decoded here; the user
// package owns the full record.
type storedUser struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	PasswordHash string `json:"passwordHash"`
}

// FileCredentialStore reads credentials from the JSON-file user collection.
type FileCredentialStore struct {
	users *jsonstore.Collection[storedUser]
}

func NewFileCredentialStore(dataDir string) (*FileCredentialStore, error) {
	users, err := jsonstore.NewCollection[storedUser](dataDir, "admin-users")
	if err != nil {
		return nil, err
	}
	return &FileCredentialStore{users: users}, nil
}

func (s *FileCredentialStore) GetByEmail(email string) (*Credential, error) {
	users, err := s.users.All()
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Email == email {
			return &Credential{
				ID:           u.ID,
				Email:        u.Email,
				Name:         u.Name,
				Role:         u.Role,
				PasswordHash: u.PasswordHash,
			}, nil
		}
	}

	return nil, internal.ErrUserNotFound
}
