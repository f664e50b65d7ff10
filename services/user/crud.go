package user

import (
	"fmt"

	"autocare/models"
	"autocare/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// GetByID retrieves a user's profile with secrets stripped.
func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch user", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: failed to fetch profile", utils.ErrInternal)
	}
	if usr == nil {
		return nil, fmt.Errorf("%w: user %s", utils.ErrNotFound, id)
	}
	usr.PasswordHash = ""
	usr.TokenHashes = nil
	return usr, nil
}

// GetAll retrieves all users for the admin view, secrets stripped.
func (s *DefaultUserService) GetAll() ([]models.User, error) {
	users, err := s.Repo.GetAll()
	if err != nil {
		utils.GetLogger().Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("%w: failed to list users", utils.ErrInternal)
	}
	for i := range users {
		users[i].PasswordHash = ""
		users[i].TokenHashes = nil
	}
	return users, nil
}

// UpdateProfile updates name and phone through a targeted write. The password
// hash and the live token set are never part of this path: the hash is
// rewritten only by Register and ChangePassword, and token hashes only by the
// session operations.
func (s *DefaultUserService) UpdateProfile(id string, name, phone string) (*models.User, error) {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch user for update", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: failed to update profile", utils.ErrInternal)
	}
	if usr == nil {
		return nil, fmt.Errorf("%w: user %s", utils.ErrNotFound, id)
	}

	if err := s.Repo.UpdateProfile(id, name, phone); err != nil {
		utils.GetLogger().Error("Failed to update user", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: failed to update profile", utils.ErrInternal)
	}

	if name != "" {
		usr.Name = name
	}
	if phone != "" {
		usr.PhoneNumber = phone
	}
	usr.PasswordHash = ""
	usr.TokenHashes = nil
	return usr, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *DefaultUserService) ChangePassword(id, current, next string) error {
	if next == "" {
		return utils.ValidationErrorf("new password is required")
	}

	usr, err := s.Repo.GetByID(id)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch user for password change", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("%w: failed to change password", utils.ErrInternal)
	}
	if usr == nil {
		return fmt.Errorf("%w: user %s", utils.ErrNotFound, id)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(current)); err != nil {
		return fmt.Errorf("%w: current password is incorrect", utils.ErrUnauthorized)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Failed to hash new password", zap.Error(err))
		return fmt.Errorf("%w: failed to change password", utils.ErrInternal)
	}

	if err := s.Repo.SetPasswordHash(id, string(hashed)); err != nil {
		utils.GetLogger().Error("Failed to store new password", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("%w: failed to change password", utils.ErrInternal)
	}
	return nil
}
