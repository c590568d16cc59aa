package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"restodash/internal/models"
	"restodash/internal/storage"
)

const defaultToastDuration = 3 * time.Second

// Store is the single application-state struct. It is owned by the
// composition root and shared by reference with every screen; all fields are
// guarded by mu. The in-memory state is canonical; storage is a write-through
// cache consulted only once, at load.
type Store struct {
	mu  sync.Mutex
	kv  storage.KV
	now func() time.Time

	toastDuration time.Duration
	manualSweep   bool

	isDark      bool
	sidebarOpen bool

	loggedIn bool
	user     *models.User

	menuItems  []models.MenuItem
	categories []string

	toasts   []models.Toast
	toastSeq int64
	expiries *models.ExpiryQueue

	users         []models.User
	notifications []models.Notification
	orders        []models.Order
	settings      models.Settings

	wake   chan struct{}
	done   chan struct{}
	closed bool
}

type Option func(*Store)

// WithClock substitutes the wall clock, so tests can pin "today" and drive
// toast expiry to an exact instant.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithToastDuration(d time.Duration) Option {
	return func(s *Store) { s.toastDuration = d }
}

// WithManualSweep disables the background toast sweeper; callers expire
// toasts themselves via SweepToasts.
func WithManualSweep() Option {
	return func(s *Store) { s.manualSweep = true }
}

// New loads persisted state from kv and returns a ready store.
func New(ctx context.Context, kv storage.KV, opts ...Option) (*Store, error) {
	s := &Store{
		kv:            kv,
		now:           time.Now,
		toastDuration: defaultToastDuration,
		expiries:      models.NewExpiryQueue(),
		settings:      models.DefaultSettings(),
		wake:          make(chan struct{}, 1),
		done:          make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.load(ctx); err != nil {
		return nil, err
	}

	if !s.manualSweep {
		go s.runSweeper()
	}
	return s, nil
}

func (s *Store) load(ctx context.Context) error {
	theme, ok, err := s.kv.Get(ctx, models.KeyTheme)
	if err != nil {
		return fmt.Errorf("failed to load theme: %w", err)
	}
	s.isDark = ok && theme == models.ThemeDark

	sidebar, ok, err := s.kv.Get(ctx, models.KeySidebarOpen)
	if err != nil {
		return fmt.Errorf("failed to load sidebar state: %w", err)
	}
	// Sidebar defaults open; only a persisted "false" closes it.
	s.sidebarOpen = !ok || sidebar != "false"

	logged, ok, err := s.kv.Get(ctx, models.KeyIsLoggedIn)
	if err != nil {
		return fmt.Errorf("failed to load session flag: %w", err)
	}
	s.loggedIn = ok && logged == "true"

	var user models.User
	ok, err = s.loadJSON(ctx, models.KeyUser, &user)
	if err != nil {
		return err
	}
	if ok {
		s.user = &user
	}

	if _, err := s.loadJSON(ctx, models.KeyUsers, &s.users); err != nil {
		return err
	}
	if _, err := s.loadJSON(ctx, models.KeyNotifications, &s.notifications); err != nil {
		return err
	}
	if _, err := s.loadJSON(ctx, models.KeyOrders, &s.orders); err != nil {
		return err
	}
	if _, err := s.loadJSON(ctx, models.KeyAppSettings, &s.settings); err != nil {
		return err
	}
	return nil
}

func (s *Store) loadJSON(ctx context.Context, key string, out interface{}) (bool, error) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("failed to parse persisted %s: %w", key, err)
	}
	return true, nil
}

// persistJSON re-serializes a whole collection under its key. Callers hold mu.
func (s *Store) persistJSON(ctx context.Context, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}

// Close stops the toast sweeper and releases the storage handle.
func (s *Store) Close() error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.done)
	}
	s.mu.Unlock()
	return s.kv.Close()
}

func (s *Store) today() string {
	return s.now().Format(models.DateLayout)
}

// Now exposes the store's clock so callers stamp data consistently with it.
func (s *Store) Now() time.Time {
	return s.now()
}

// IsDark reports the current theme flag.
func (s *Store) IsDark() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isDark
}

// ToggleTheme flips the theme and persists the resulting mode literal.
func (s *Store) ToggleTheme(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.isDark = !s.isDark
	mode := models.ThemeLight
	if s.isDark {
		mode = models.ThemeDark
	}
	if err := s.kv.Set(ctx, models.KeyTheme, mode); err != nil {
		return s.isDark, fmt.Errorf("failed to persist theme: %w", err)
	}
	return s.isDark, nil
}

func (s *Store) IsSidebarOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sidebarOpen
}

// ToggleSidebar flips and persists the sidebar flag. The original had two
// variants, one persisting and one not; the persisting one is adopted.
func (s *Store) ToggleSidebar(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sidebarOpen = !s.sidebarOpen
	if err := s.kv.Set(ctx, models.KeySidebarOpen, fmt.Sprintf("%t", s.sidebarOpen)); err != nil {
		return s.sidebarOpen, fmt.Errorf("failed to persist sidebar state: %w", err)
	}
	return s.sidebarOpen, nil
}

// Session returns the login flag and the session user copy, if any.
func (s *Store) Session() (bool, *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return s.loggedIn, nil
	}
	u := *s.user
	return s.loggedIn, &u
}

// Login installs the given user as the session unconditionally; credential
// checks happen in the auth package before this is called. Both session keys
// are written together.
func (s *Store) Login(ctx context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user = user.Sanitized()
	s.loggedIn = true
	s.user = &user

	if err := s.kv.Set(ctx, models.KeyIsLoggedIn, "true"); err != nil {
		return fmt.Errorf("failed to persist session flag: %w", err)
	}
	return s.persistJSON(ctx, models.KeyUser, user)
}

// Logout clears both session keys and the in-memory session. Idempotent.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loggedIn = false
	s.user = nil

	if err := s.kv.Delete(ctx, models.KeyIsLoggedIn); err != nil {
		return fmt.Errorf("failed to clear session flag: %w", err)
	}
	if err := s.kv.Delete(ctx, models.KeyUser); err != nil {
		return fmt.Errorf("failed to clear session user: %w", err)
	}
	return nil
}
