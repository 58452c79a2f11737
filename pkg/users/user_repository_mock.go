package users

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockUserRepository is a user repository for testing
type MockUserRepository struct {
	Users []*User
}

// Add adds a user
func (m *MockUserRepository) Add(_ context.Context, user *User) error {
	user.CreatedAt = time.Now()
	user.LastModifiedAt = time.Now()
	user.ID = primitive.NewObjectID()

	m.Users = append(m.Users, user)
	return nil
}

// FindByID finds a user by ID
func (m *MockUserRepository) FindByID(_ context.Context, id string) (*User, error) {
	for _, user := range m.Users {
		if user.ID.Hex() == id {
			return user, nil
		}
	}

	return nil, errors.New("user not found")
}

// FindByEmail finds a user by Email
func (m *MockUserRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	for _, user := range m.Users {
		if user.Email == email {
			return user, nil
		}
	}

	return nil, errors.New("user not found")
}

// Update updates a user
func (m *MockUserRepository) Update(_ context.Context, user *User) error {
	for i, existing := range m.Users {
		if existing.ID == user.ID {
			user.LastModifiedAt = time.Now()
			m.Users[i] = user
			return nil
		}
	}

	return errors.New("user not found")
}

// Remove removes a user
func (m *MockUserRepository) Remove(_ context.Context, id string) error {
	for i, user := range m.Users {
		if user.ID.Hex() == id {
			m.Users = append(m.Users[:i], m.Users[i+1:]...)
			return nil
		}
	}

	return errors.New("user not found")
}
