package memory

import (
	"context"

	"github.com/mertkaya/edumanage/internal/app/models"
	"github.com/mertkaya/edumanage/internal/pkg/apperrors"
)

// GetUser retrieves a user by ID.
func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return copyUser(user), nil
}

// GetUserByUsername retrieves a user by login name.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.userOrder {
		if s.users[id].Username == username {
			return copyUser(s.users[id]), nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// GetUserByEmail retrieves a user by email address.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.userOrder {
		if s.users[id].Email == email {
			return copyUser(s.users[id]), nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// CreateUser stores a new user account. Username and email must be unique
// across all users; the role defaults to student when empty.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.userOrder {
		existing := s.users[id]
		if existing.Username == user.Username {
			return apperrors.ErrUsernameAlreadyExists
		}
		if existing.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}

	if user.Role == "" {
		user.Role = models.RoleStudent
	}
	if !user.Role.IsValid() {
		return apperrors.ErrInvalidRole
	}

	user.ID = newID()
	user.CreatedAt = s.nowFunc()

	s.users[user.ID] = copyUser(user)
	s.userOrder = append(s.userOrder, user.ID)
	return nil
}

func copyUser(u *models.User) *models.User {
	c := *u
	return &c
}
