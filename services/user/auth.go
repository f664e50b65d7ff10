package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	userRepo "autocare/database/repository/user"
	"autocare/models"
	"autocare/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Namespace is the principal namespace user tokens are minted under. A token
// from another namespace never authenticates a user-gated operation.
const Namespace = "user"

// DefaultUserService is the production UserService backed by MongoDB.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	TokenTTL time.Duration
}

func (s *DefaultUserService) tokenTTL() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return 24 * time.Hour
}

// Register creates a new user, hashes the password, and opens a first session.
func (s *DefaultUserService) Register(input models.User) (*AuthResponse, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Email == "" || input.Password == "" {
		return nil, utils.ValidationErrorf("email and password are required")
	}
	if input.Name == "" {
		return nil, utils.ValidationErrorf("name is required")
	}
	if input.PhoneNumber == "" {
		return nil, utils.ValidationErrorf("phone number is required")
	}

	existing, err := s.Repo.GetByEmailWithProjection(input.Email, bson.M{"id": 1})
	if err != nil {
		utils.GetLogger().Error("Failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("%w: registration failed, please try again", utils.ErrInternal)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: a user with this email already exists", utils.ErrConflict)
	}

	// Any plates submitted with registration must be unused platform-wide.
	for _, car := range input.Cars {
		taken, err := s.Repo.PlateExists(car.LicensePlate)
		if err != nil {
			utils.GetLogger().Error("Failed to check license plate", zap.Error(err))
			return nil, fmt.Errorf("%w: registration failed, please try again", utils.ErrInternal)
		}
		if taken {
			return nil, fmt.Errorf("%w: a car with plate %s is already registered", utils.ErrConflict, car.LicensePlate)
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("%w: registration failed, please try again", utils.ErrInternal)
	}
	input.PasswordHash = string(hashedPassword)
	input.Password = "" // never persist or echo the plain text

	input.ID = uuid.New().String()
	if input.Cars == nil {
		input.Cars = []models.Car{}
	}

	if err := s.Repo.Create(&input); err != nil {
		utils.GetLogger().Error("Failed to create user", zap.Error(err))
		return nil, fmt.Errorf("%w: registration failed, please try again", utils.ErrInternal)
	}

	token, err := s.openSession(input.ID)
	if err != nil {
		return nil, err
	}

	input.PasswordHash = ""
	return &AuthResponse{User: &input, Token: token}, nil
}

// Authenticate verifies credentials and opens a new session. Both failure
// branches return the identical generic error to avoid user enumeration.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch user for authentication", zap.Error(err))
		return nil, fmt.Errorf("%w: authentication failed, please try again", utils.ErrInternal)
	}
	if usr == nil {
		return nil, fmt.Errorf("%w: invalid email or password", utils.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", utils.ErrUnauthorized)
	}

	token, err := s.openSession(usr.ID)
	if err != nil {
		return nil, err
	}

	usr.PasswordHash = ""
	return &AuthResponse{User: usr, Token: token}, nil
}

// openSession mints a token and records its hash in the user's live set.
func (s *DefaultUserService) openSession(userID string) (string, error) {
	token, err := utils.GenerateToken(userID, Namespace, s.tokenTTL())
	if err != nil {
		utils.GetLogger().Error("Failed to generate auth token", zap.Error(err))
		return "", fmt.Errorf("%w: authentication failed, please try again", utils.ErrInternal)
	}
	if err := s.Repo.AddTokenHash(userID, utils.HashToken(token)); err != nil {
		utils.GetLogger().Error("Failed to store token hash", zap.Error(err))
		return "", fmt.Errorf("%w: authentication failed, please try again", utils.ErrInternal)
	}
	return token, nil
}

// Logout revokes exactly the presented token. Other live sessions of the same
// user keep working. Idempotent when the token is already revoked.
func (s *DefaultUserService) Logout(token string) error {
	userID, ns, err := utils.ExtractClaimsFromToken(token)
	if err != nil || ns != Namespace {
		return fmt.Errorf("%w: invalid token", utils.ErrUnauthorized)
	}

	hash := utils.HashToken(token)
	if err := s.Repo.RemoveTokenHash(userID, hash); err != nil {
		utils.GetLogger().Error("Failed to revoke user token", zap.String("userID", userID), zap.Error(err))
		return fmt.Errorf("%w: failed to logout, please try again", utils.ErrInternal)
	}

	// Drop the auth-gate cache entry so revocation is immediate.
	if authCache := utils.GetAuthCacheClient(); authCache != nil {
		cacheKey := utils.AuthCachePrefix + Namespace + ":" + userID + ":" + hash
		if err := authCache.Del(context.Background(), cacheKey).Err(); err != nil {
			utils.GetLogger().Error("Failed to clear auth cache on logout", zap.Error(err))
		}
	}
	return nil
}
