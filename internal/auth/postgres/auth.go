package postgres

import (
	"database/sql"

	"github.com/megapark/hotel-backend/internal"
	"github.com/megapark/hotel-backend/internal/auth"
	"gorm.io/gorm"
)

// CredentialStore reads user records for credential verification. Inactive
// users are not filtered here: deactivation does not stop login, matching
// the documented reference behavior.
type CredentialStore struct {
	db *gorm.DB
}

func NewCredentialStore(db *gorm.DB) *CredentialStore {
	return &CredentialStore{db: db}
}

func (s *CredentialStore) GetByEmail(email string) (*auth.Credential, error) {
	var cred auth.Credential
	query := `SELECT id, email, name, role, password_hash FROM users WHERE email = ? LIMIT 1`

	row := s.db.Raw(query, email).Row()
	if err := row.Scan(&cred.ID, &cred.Email, &cred.Name, &cred.Role, &cred.PasswordHash); err != nil {
		if err == sql.ErrNoRows {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return &cred, nil
}
