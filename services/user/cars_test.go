package user

import (
	"errors"
	"testing"

	"autocare/models"
	"autocare/utils"
)

func TestAddCar(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	reg, err := svc.Register(validRegistration())
	if err != nil {
		t.Fatalf("register error: %v", err)
	}

	car, err := svc.AddCar(reg.User.ID, models.Car{Model: "Civic", Year: 2020, LicensePlate: "x1"})
	if err != nil {
		t.Fatalf("add car error: %v", err)
	}
	if car.LicensePlate != "X1" {
		t.Fatalf("expected normalized plate X1, got %s", car.LicensePlate)
	}

	usr, err := svc.GetByID(reg.User.ID)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if len(usr.Cars) != 1 || usr.Cars[0].Model != "Civic" {
		t.Fatalf("expected the car on the profile, got %+v", usr.Cars)
	}
}

func TestAddCarDuplicatePlateAcrossUsers(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	a, err := svc.Register(validRegistration())
	if err != nil {
		t.Fatalf("register error: %v", err)
	}
	other := validRegistration()
	other.Email = "bob@example.com"
	b, err := svc.Register(other)
	if err != nil {
		t.Fatalf("register error: %v", err)
	}

	if _, err := svc.AddCar(a.User.ID, models.Car{Model: "Civic", Year: 2020, LicensePlate: "X1"}); err != nil {
		t.Fatalf("add car error: %v", err)
	}

	// The same plate under a different user is a platform-wide conflict.
	_, err = svc.AddCar(b.User.ID, models.Car{Model: "Golf", Year: 2019, LicensePlate: "X1"})
	if !errors.Is(err, utils.ErrConflict) {
		t.Fatalf("expected conflict for duplicate plate, got %v", err)
	}
}

func TestAddCarValidation(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	reg, err := svc.Register(validRegistration())
	if err != nil {
		t.Fatalf("register error: %v", err)
	}

	if _, err := svc.AddCar(reg.User.ID, models.Car{Year: 2020, LicensePlate: "X2"}); !errors.Is(err, utils.ErrValidation) {
		t.Fatalf("expected validation error for missing model, got %v", err)
	}
	if _, err := svc.AddCar(reg.User.ID, models.Car{Model: "Civic", Year: 1700, LicensePlate: "X2"}); !errors.Is(err, utils.ErrValidation) {
		t.Fatalf("expected validation error for implausible year, got %v", err)
	}
}
