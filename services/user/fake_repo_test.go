package user

import (
	"fmt"
	"sync"
	"time"

	"autocare/models"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeUserRepo is an in-memory UserRepository for service tests.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func copyUser(u *models.User) *models.User {
	cp := *u
	cp.Cars = append([]models.Car(nil), u.Cars...)
	cp.TokenHashes = append([]string(nil), u.TokenHashes...)
	return &cp
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return copyUser(u), nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetAll() ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.User
	for _, u := range r.users {
		out = append(out, *copyUser(u))
	}
	return out, nil
}

func (r *fakeUserRepo) Create(u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.users[u.ID] = copyUser(u)
	return nil
}

func (r *fakeUserRepo) UpdateProfile(id string, name, phone string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return fmt.Errorf("user with id %s not found", id)
	}
	if name != "" {
		u.Name = name
	}
	if phone != "" {
		u.PhoneNumber = phone
	}
	u.UpdatedAt = time.Now()
	return nil
}

func (r *fakeUserRepo) SetPasswordHash(id, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return fmt.Errorf("user with id %s not found", id)
	}
	u.PasswordHash = hash
	u.UpdatedAt = time.Now()
	return nil
}

func (r *fakeUserRepo) GetByIDWithProjection(id string, _ bson.M) (*models.User, error) {
	return r.GetByID(id)
}

func (r *fakeUserRepo) GetByEmailWithProjection(email string, _ bson.M) (*models.User, error) {
	return r.GetByEmail(email)
}

func (r *fakeUserRepo) AddCar(userID string, car models.Car) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("user with id %s not found", userID)
	}
	u.Cars = append(u.Cars, car)
	return nil
}

func (r *fakeUserRepo) PlateExists(plate string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		for _, c := range u.Cars {
			if c.LicensePlate == plate {
				return true, nil
			}
		}
	}
	return false, nil
}

func (r *fakeUserRepo) AddTokenHash(userID, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("user with id %s not found", userID)
	}
	u.TokenHashes = append(u.TokenHashes, hash)
	return nil
}

func (r *fakeUserRepo) RemoveTokenHash(userID, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return nil
	}
	var kept []string
	for _, h := range u.TokenHashes {
		if h != hash {
			kept = append(kept, h)
		}
	}
	u.TokenHashes = kept
	return nil
}

func (r *fakeUserRepo) HasTokenHash(userID, hash string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return false, nil
	}
	for _, h := range u.TokenHashes {
		if h == hash {
			return true, nil
		}
	}
	return false, nil
}
