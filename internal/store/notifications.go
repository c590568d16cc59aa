package store

import (
	"context"
	"time"

	"github.com/lucsky/cuid"

	"restodash/internal/models"
)

// Notifications returns a copy of the notification center entries.
func (s *Store) Notifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	notifs := make([]models.Notification, len(s.notifications))
	copy(notifs, s.notifications)
	return notifs
}

// AddNotification appends an entry with a fresh cuid and persists the list.
// An empty timestamp is filled with now.
func (s *Store) AddNotification(ctx context.Context, n models.Notification) (models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n.ID = cuid.New()
	n.Read = false
	if n.Timestamp == "" {
		n.Timestamp = s.now().Format(time.RFC3339)
	}
	s.notifications = append(s.notifications, n)
	if err := s.persistJSON(ctx, models.KeyNotifications, s.notifications); err != nil {
		return n, err
	}
	return n, nil
}

// MarkNotificationAsRead flags one entry read. Unknown ids are a no-op.
func (s *Store) MarkNotificationAsRead(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for i := range s.notifications {
		if s.notifications[i].ID == id && !s.notifications[i].Read {
			s.notifications[i].Read = true
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.persistJSON(ctx, models.KeyNotifications, s.notifications)
}

// MarkAllNotificationsAsRead flags every entry read.
func (s *Store) MarkAllNotificationsAsRead(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		s.notifications[i].Read = true
	}
	return s.persistJSON(ctx, models.KeyNotifications, s.notifications)
}

// ClearAllNotifications empties the list and drops the storage key.
func (s *Store) ClearAllNotifications(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = nil
	return s.kv.Delete(ctx, models.KeyNotifications)
}

// DeleteNotification removes one entry. Unknown ids are a no-op.
func (s *Store) DeleteNotification(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.notifications[:0]
	for _, n := range s.notifications {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(s.notifications) {
		return nil
	}
	s.notifications = kept
	return s.persistJSON(ctx, models.KeyNotifications, s.notifications)
}

// UnreadNotificationCount recomputes from in-memory state, which is
// canonical; storage is never re-read mid-session.
func (s *Store) UnreadNotificationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, n := range s.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}
