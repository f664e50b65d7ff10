package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	adminRepo "autocare/database/repository/admin"
	"autocare/models"
	"autocare/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Namespace is the principal namespace admin tokens are minted under.
const Namespace = "admin"

// DefaultAdminService is the production AdminService backed by MongoDB.
type DefaultAdminService struct {
	Repo     adminRepo.AdminRepository
	TokenTTL time.Duration
}

func (s *DefaultAdminService) tokenTTL() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return 12 * time.Hour
}

// Authenticate verifies credentials and opens a new session. Unknown email
// and wrong password fail with the identical generic error.
func (s *DefaultAdminService) Authenticate(email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	adm, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch admin for authentication", zap.Error(err))
		return nil, fmt.Errorf("%w: authentication failed, please try again", utils.ErrInternal)
	}
	if adm == nil {
		return nil, fmt.Errorf("%w: invalid email or password", utils.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(adm.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", utils.ErrUnauthorized)
	}

	token, err := utils.GenerateToken(adm.ID, Namespace, s.tokenTTL())
	if err != nil {
		utils.GetLogger().Error("Failed to generate admin token", zap.Error(err))
		return nil, fmt.Errorf("%w: authentication failed, please try again", utils.ErrInternal)
	}
	if err := s.Repo.AddTokenHash(adm.ID, utils.HashToken(token)); err != nil {
		utils.GetLogger().Error("Failed to store admin token hash", zap.Error(err))
		return nil, fmt.Errorf("%w: authentication failed, please try again", utils.ErrInternal)
	}

	adm.PasswordHash = ""
	adm.TokenHashes = nil
	return &AuthResponse{Admin: adm, Token: token}, nil
}

// Logout revokes exactly the presented token. Concurrent sessions of the same
// admin keep their own tokens. Idempotent when already revoked.
func (s *DefaultAdminService) Logout(token string) error {
	adminID, ns, err := utils.ExtractClaimsFromToken(token)
	if err != nil || ns != Namespace {
		return fmt.Errorf("%w: invalid token", utils.ErrUnauthorized)
	}

	hash := utils.HashToken(token)
	if err := s.Repo.RemoveTokenHash(adminID, hash); err != nil {
		utils.GetLogger().Error("Failed to revoke admin token", zap.String("adminID", adminID), zap.Error(err))
		return fmt.Errorf("%w: failed to logout, please try again", utils.ErrInternal)
	}

	if authCache := utils.GetAuthCacheClient(); authCache != nil {
		cacheKey := utils.AuthCachePrefix + Namespace + ":" + adminID + ":" + hash
		if err := authCache.Del(context.Background(), cacheKey).Err(); err != nil {
			utils.GetLogger().Error("Failed to clear auth cache on admin logout", zap.Error(err))
		}
	}
	return nil
}

// Seed provisions the configured admin account if it does not exist yet.
func (s *DefaultAdminService) Seed(name, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		utils.GetLogger().Warn("Admin seeding skipped: no credentials configured")
		return nil
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return fmt.Errorf("failed to check for seed admin: %w", err)
	}
	if existing != nil {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed admin password: %w", err)
	}

	adm := &models.Admin{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		TokenHashes:  []string{},
	}
	if err := s.Repo.Create(adm); err != nil {
		return fmt.Errorf("failed to create seed admin: %w", err)
	}
	utils.GetLogger().Info("Seeded admin account", zap.String("email", email))
	return nil
}
