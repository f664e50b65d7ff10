package user

import (
	"fmt"
	"strings"
	"time"

	"autocare/models"
	"autocare/utils"

	"go.uber.org/zap"
)

// AddCar appends a car to the user's list. License plates are unique across
// all users, so a plate held by anyone, not just this user, is a conflict.
func (s *DefaultUserService) AddCar(userID string, car models.Car) (*models.Car, error) {
	car.LicensePlate = strings.ToUpper(strings.TrimSpace(car.LicensePlate))
	if car.Model == "" || car.LicensePlate == "" {
		return nil, utils.ValidationErrorf("car model and license plate are required")
	}
	if car.Year < 1900 || car.Year > time.Now().Year()+1 {
		return nil, utils.ValidationErrorf("car year %d is out of range", car.Year)
	}

	taken, err := s.Repo.PlateExists(car.LicensePlate)
	if err != nil {
		utils.GetLogger().Error("Failed to check license plate", zap.Error(err))
		return nil, fmt.Errorf("%w: failed to add car", utils.ErrInternal)
	}
	if taken {
		return nil, fmt.Errorf("%w: a car with plate %s is already registered", utils.ErrConflict, car.LicensePlate)
	}

	if err := s.Repo.AddCar(userID, car); err != nil {
		utils.GetLogger().Error("Failed to add car", zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("%w: failed to add car", utils.ErrInternal)
	}
	return &car, nil
}
