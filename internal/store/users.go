package store

import (
	"context"
	"strings"

	"restodash/internal/models"
)

// Users returns a copy of the user directory.
func (s *Store) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]models.User, len(s.users))
	copy(users, s.users)
	return users
}

// UserByID returns the directory entry for id, or false.
func (s *Store) UserByID(id int) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// UserByEmail looks a directory entry up by email, case-insensitively.
func (s *Store) UserByEmail(email string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return models.User{}, false
}

// CreateUser appends a directory entry with the next id, computed over the
// ids that remain, and persists the whole directory.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.today()
	user.ID = nextID(userIDs(s.users))
	user.CreatedAt = today
	user.UpdatedAt = today
	if user.JoinDate == "" {
		user.JoinDate = today
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if user.Status == "" {
		user.Status = models.UserStatusActive
	}

	s.users = append(s.users, user)
	if err := s.persistJSON(ctx, models.KeyUsers, s.users); err != nil {
		return user, err
	}
	return user, nil
}

// UpdateUserAsAdmin patches a directory entry and refreshes its updatedAt.
// Unknown ids are a silent no-op. The session copy of the same user is NOT
// touched; the two drift apart until the next login.
func (s *Store) UpdateUserAsAdmin(ctx context.Context, id int, patch models.UserPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for i := range s.users {
		if s.users[i].ID == id {
			patch.Apply(&s.users[i])
			s.users[i].UpdatedAt = s.today()
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.persistJSON(ctx, models.KeyUsers, s.users)
}

// DeleteUser removes a directory entry. Unknown ids are a silent no-op.
func (s *Store) DeleteUser(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.users[:0]
	for _, u := range s.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	if len(kept) == len(s.users) {
		return nil
	}
	s.users = kept
	return s.persistJSON(ctx, models.KeyUsers, s.users)
}

// SetPassword replaces the stored credential hash for a directory entry.
func (s *Store) SetPassword(ctx context.Context, id int, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].PasswordHash = passwordHash
			s.users[i].UpdatedAt = s.today()
			return s.persistJSON(ctx, models.KeyUsers, s.users)
		}
	}
	return nil
}

// UpdateProfile merges the patch into the session user copy only and
// persists it under the session key. The directory entry the session was
// drawn from is left alone, as in the source.
func (s *Store) UpdateProfile(ctx context.Context, patch models.UserPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	patch.Apply(s.user)
	s.user.UpdatedAt = s.today()
	return s.persistJSON(ctx, models.KeyUser, *s.user)
}

// UploadUserPhoto swaps the session user's avatar.
func (s *Store) UploadUserPhoto(ctx context.Context, photo string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	s.user.Avatar = photo
	return s.persistJSON(ctx, models.KeyUser, *s.user)
}

func userIDs(users []models.User) []int {
	ids := make([]int, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	return ids
}
