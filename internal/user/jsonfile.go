package user

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/megapark/hotel-backend/internal"
	"github.com/megapark/hotel-backend/internal/storage/jsonstore"
)

// FileRepository implements Repository on the JSON-file store. It shares the
// admin-users collection with the auth credential lookup.
type FileRepository struct {
	users *jsonstore.Collection[Record]
}

func NewFileRepository(dataDir string) (*FileRepository, error) {
	users, err := jsonstore.NewCollection[Record](dataDir, "admin-users")
	if err != nil {
		return nil, err
	}
	return &FileRepository{users: users}, nil
}

// EnsureSeedAdmin writes the fallback admin account in an empty collection,
// hashing the seed password so no plaintext ever hits disk.
func (r *FileRepository) EnsureSeedAdmin(bcryptCost int) error {
	return r.users.Mutate(func(records []Record) ([]Record, error) {
		if len(records) > 0 {
			return records, nil
		}

		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcryptCost)
		if err != nil {
			return nil, err
		}

		now := time.Now()
		return []Record{{
			ID:           "admin-001",
			Email:        "admin@megapark.com",
			Name:         "Admin User",
			Role:         "admin",
			PasswordHash: string(hash),
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}}, nil
	})
}

func (r *FileRepository) GetAll() ([]*Record, error) {
	records, err := r.users.All()
	if err != nil {
		return nil, err
	}

	out := make([]*Record, len(records))
	for i := range records {
		rec := records[i]
		out[i] = &rec
	}
	return out, nil
}

func (r *FileRepository) GetByID(id string) (*Record, error) {
	records, err := r.users.All()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			rec := records[i]
			return &rec, nil
		}
	}
	return nil, internal.ErrUserNotFound
}

func (r *FileRepository) GetByEmail(email string) (*Record, error) {
	records, err := r.users.All()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].Email == email {
			rec := records[i]
			return &rec, nil
		}
	}
	return nil, internal.ErrUserNotFound
}

func (r *FileRepository) Create(rec *Record) error {
	return r.users.Mutate(func(records []Record) ([]Record, error) {
		return append(records, *rec), nil
	})
}

func (r *FileRepository) Update(rec *Record) error {
	return r.users.Mutate(func(records []Record) ([]Record, error) {
		for i := range records {
			if records[i].ID == rec.ID {
				records[i] = *rec
				return records, nil
			}
		}
		return nil, internal.ErrUserNotFound
	})
}

func (r *FileRepository) Delete(id string) error {
	return r.users.Mutate(func(records []Record) ([]Record, error) {
		for i := range records {
			if records[i].ID == id {
				return append(records[:i], records[i+1:]...), nil
			}
		}
		return nil, internal.ErrUserNotFound
	})
}
