package user

import (
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/megapark/hotel-backend/internal"
	"github.com/megapark/hotel-backend/internal/auth"
)

func TestUser(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "User Module Suite")
}

type mockRepository struct {
	records map[string]*Record
}

func newMockRepository() *mockRepository {
	return &mockRepository{records: map[string]*Record{}}
}

func (m *mockRepository) seed(id, email, password, role string) {
	hash, _ := auth.HashPassword(password, 4)
	m.records[id] = &Record{
		ID:           id,
		Email:        email,
		Name:         "Test User",
		Role:         role,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func (m *mockRepository) GetAll() ([]*Record, error) {
	out := make([]*Record, 0, len(m.records))
	for _, r := range m.records {
		out = append(out, r)
	}
	return out, nil
}

func (m *mockRepository) GetByID(id string) (*Record, error) {
	if r, ok := m.records[id]; ok {
		return r, nil
	}
	return nil, errors.New("not found")
}

func (m *mockRepository) GetByEmail(email string) (*Record, error) {
	for _, r := range m.records {
		if r.Email == email {
			return r, nil
		}
	}
	return nil, errors.New("not found")
}

func (m *mockRepository) Create(rec *Record) error {
	m.records[rec.ID] = rec
	return nil
}

func (m *mockRepository) Update(rec *Record) error {
	if _, ok := m.records[rec.ID]; !ok {
		return errors.New("not found")
	}
	m.records[rec.ID] = rec
	return nil
}

func (m *mockRepository) Delete(id string) error {
	if _, ok := m.records[id]; !ok {
		return errors.New("not found")
	}
	delete(m.records, id)
	return nil
}

var _ = ginkgo.Describe("UserService", func() {
	var (
		service *Service
		repo    *mockRepository
		admin   *auth.Identity
		staff   *auth.Identity
	)

	ginkgo.BeforeEach(func() {
		repo = newMockRepository()
		repo.seed("admin-001", "admin@megapark.com", "admin123", auth.RoleAdmin)
		repo.seed("user-1", "staff@megapark.com", "staff123", auth.RoleStaff)

		lg := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = NewService(repo, 4, lg)

		admin = &auth.Identity{ID: "admin-001", Email: "admin@megapark.com", Role: auth.RoleAdmin}
		staff = &auth.Identity{ID: "user-1", Email: "staff@megapark.com", Role: auth.RoleStaff}
	})

	ginkgo.Describe("Create", func() {
		ginkgo.It("should store a hashed password and default the role to staff", func() {
			u, err := service.Create(&CreateUserDTO{
				Email:    "new@megapark.com",
				Password: "password123",
				Name:     "New Person",
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(u.Role).To(gomega.Equal(auth.RoleStaff))

			rec, err := repo.GetByEmail("new@megapark.com")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(rec.PasswordHash).ToNot(gomega.Equal("password123"))
			gomega.Expect(auth.VerifyPassword(rec.PasswordHash, "password123")).To(gomega.Succeed())
		})

		ginkgo.It("should reject a duplicate email with a conflict", func() {
			_, err := service.Create(&CreateUserDTO{
				Email:    "admin@megapark.com",
				Password: "password123",
				Name:     "Dup",
			})
			gomega.Expect(err).To(gomega.Equal(internal.ErrEmailExists))
		})

		ginkgo.It("should reject a short password", func() {
			_, err := service.Create(&CreateUserDTO{
				Email:    "short@megapark.com",
				Password: "short",
				Name:     "Short",
			})
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("Delete", func() {
		ginkgo.It("should forbid deleting your own account even as admin", func() {
			err := service.Delete("admin-001", admin)
			gomega.Expect(err).To(gomega.Equal(internal.ErrSelfDeleteForbidden))
		})

		ginkgo.It("should allow an admin to delete another user", func() {
			gomega.Expect(service.Delete("user-1", admin)).To(gomega.Succeed())
			_, err := repo.GetByID("user-1")
			gomega.Expect(err).To(gomega.HaveOccurred())
		})

		ginkgo.It("should return not found for an unknown id", func() {
			err := service.Delete("ghost", admin)
			gomega.Expect(err).To(gomega.Equal(internal.ErrUserNotFound))
		})
	})

	ginkgo.Describe("ChangePassword", func() {
		ginkgo.It("should let an admin set another user's password without the current one", func() {
			err := service.ChangePassword("user-1", admin, &ChangePasswordDTO{
				NewPassword: "replacement1",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			rec, _ := repo.GetByID("user-1")
			gomega.Expect(auth.VerifyPassword(rec.PasswordHash, "replacement1")).To(gomega.Succeed())
		})

		ginkgo.It("should let an admin change their own password without the current one", func() {
			err := service.ChangePassword("admin-001", admin, &ChangePasswordDTO{
				NewPassword: "replacement1",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("should require the correct current password for a non-admin", func() {
			err := service.ChangePassword("user-1", staff, &ChangePasswordDTO{
				CurrentPassword: "wrong",
				NewPassword:     "replacement1",
			})
			gomega.Expect(err).To(gomega.Equal(internal.ErrWrongPassword))

			err = service.ChangePassword("user-1", staff, &ChangePasswordDTO{
				CurrentPassword: "staff123",
				NewPassword:     "replacement1",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("should forbid a non-admin changing someone else's password", func() {
			err := service.ChangePassword("admin-001", staff, &ChangePasswordDTO{
				CurrentPassword: "staff123",
				NewPassword:     "replacement1",
			})
			gomega.Expect(err).To(gomega.HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.StatusCode).To(gomega.Equal(403))
		})
	})
})
