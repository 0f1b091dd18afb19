package user

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/megapark/hotel-backend/internal"
	"github.com/megapark/hotel-backend/internal/auth"
)

type Service struct {
	repo       Repository
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo Repository, bcryptCost int, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func (s *Service) List() ([]*User, error) {
	records, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]*User, len(records))
	for i, rec := range records {
		users[i] = rec.ToUser()
	}
	return users, nil
}

// Create hashes the password at creation time and stores the new user.
func (s *Service) Create(dto *CreateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if existing, err := s.repo.GetByEmail(dto.Email); err == nil && existing != nil {
		return nil, internal.ErrEmailExists
	}

	hash, err := auth.HashPassword(dto.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	rec := &Record{
		ID:           "user-" + uuid.NewString(),
		Email:        dto.Email,
		Name:         dto.Name,
		Role:         dto.Role,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(rec); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user created", "user_id", rec.ID, "role", rec.Role)

	return rec.ToUser(), nil
}

func (s *Service) Update(id string, dto *UpdateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	rec, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrUserNotFound
	}

	if dto.Name != nil {
		rec.Name = *dto.Name
	}
	if dto.Role != nil {
		rec.Role = *dto.Role
	}
	if dto.IsActive != nil {
		rec.IsActive = *dto.IsActive
	}
	rec.UpdatedAt = time.Now()

	if err := s.repo.Update(rec); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	return rec.ToUser(), nil
}

// Delete removes a user. Deleting your own account is always forbidden,
// admin or not.
func (s *Service) Delete(id string, actor *auth.Identity) error {
	if id == actor.ID {
		return internal.ErrSelfDeleteForbidden
	}

	if _, err := s.repo.GetByID(id); err != nil {
		return internal.ErrUserNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.logger.Info("user deleted", "user_id", id, "deleted_by", actor.ID)
	return nil
}

// ChangePassword applies one consistent policy: admins set any user's
// password without supplying the current one (their own included); a
// non-admin may only change their own password and must supply the current
// one, verified against the stored hash.
func (s *Service) ChangePassword(id string, actor *auth.Identity, dto *ChangePasswordDTO) error {
	if id != actor.ID && !actor.IsAdmin() {
		return internal.NewForbiddenError("Unauthorized", internal.ErrCodeAdminRequired)
	}

	if err := dto.Validate(); err != nil {
		return err
	}

	rec, err := s.repo.GetByID(id)
	if err != nil {
		return internal.ErrUserNotFound
	}

	if !actor.IsAdmin() {
		if err := auth.VerifyPassword(rec.PasswordHash, dto.CurrentPassword); err != nil {
			return internal.ErrWrongPassword
		}
	}

	hash, err := auth.HashPassword(dto.NewPassword, s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	rec.PasswordHash = hash
	rec.UpdatedAt = time.Now()

	if err := s.repo.Update(rec); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	s.logger.Info("password changed", "user_id", id, "changed_by", actor.ID)
	return nil
}
