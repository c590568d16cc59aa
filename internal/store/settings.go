package store

import (
	"context"

	"restodash/internal/models"
)

// Settings returns the current appSettings record.
func (s *Store) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// SaveSettings replaces and persists the appSettings record. This is the one
// mutation whose storage failure the settings screen surfaces as an error
// toast, so the error matters to the caller.
func (s *Store) SaveSettings(ctx context.Context, settings models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = settings
	return s.persistJSON(ctx, models.KeyAppSettings, s.settings)
}

// SeedIfEmpty installs fixtures for any collection that has neither
// persisted nor in-memory data yet. The menu catalog and category list are
// session state, so they are refilled every launch.
func (s *Store) SeedIfEmpty(ctx context.Context, menu []models.MenuItem, categories []string, users []models.User, notifications []models.Notification, orders []models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.menuItems) == 0 {
		s.menuItems = menu
	}
	if len(s.categories) == 0 {
		s.categories = categories
	}
	if len(s.users) == 0 {
		s.users = users
		if err := s.persistJSON(ctx, models.KeyUsers, s.users); err != nil {
			return err
		}
	}
	if len(s.notifications) == 0 {
		s.notifications = notifications
		if err := s.persistJSON(ctx, models.KeyNotifications, s.notifications); err != nil {
			return err
		}
	}
	if len(s.orders) == 0 {
		s.orders = orders
		if err := s.persistJSON(ctx, models.KeyOrders, s.orders); err != nil {
			return err
		}
	}
	return nil
}
