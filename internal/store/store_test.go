package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"restodash/internal/models"
	"restodash/internal/storage"
)

var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*Store, *storage.MemoryKV) {
	t.Helper()
	kv := storage.NewMemoryKV()
	s, err := New(context.Background(), kv,
		WithClock(func() time.Time { return testNow }),
		WithManualSweep(),
	)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	return s, kv
}

func TestLoginLogoutClearsSessionKeys(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)

	user := models.User{ID: 1, FullName: "John Admin", Email: "admin@example.com", Role: models.RoleAdmin}
	if err := s.Login(ctx, user); err != nil {
		t.Fatalf("login: %v", err)
	}

	if flag, ok, _ := kv.Get(ctx, models.KeyIsLoggedIn); !ok || flag != "true" {
		t.Fatalf("isLoggedIn key = %q, %t; want \"true\", true", flag, ok)
	}
	if _, ok, _ := kv.Get(ctx, models.KeyUser); !ok {
		t.Fatal("user key missing after login")
	}

	if err := s.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, models.KeyIsLoggedIn); ok {
		t.Error("isLoggedIn key still present after logout")
	}
	if _, ok, _ := kv.Get(ctx, models.KeyUser); ok {
		t.Error("user key still present after logout")
	}
	if loggedIn, u := s.Session(); loggedIn || u != nil {
		t.Errorf("session after logout = %t, %v; want logged out", loggedIn, u)
	}

	// Logout is idempotent.
	if err := s.Logout(ctx); err != nil {
		t.Fatalf("second logout: %v", err)
	}
}

func TestLoginStripsPasswordHash(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)

	if err := s.Login(ctx, models.User{ID: 1, Email: "a@b.co", PasswordHash: "secret"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	raw, _, _ := kv.Get(ctx, models.KeyUser)
	var persisted models.User
	if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
		t.Fatalf("parse persisted user: %v", err)
	}
	if persisted.PasswordHash != "" {
		t.Error("session user persisted with password hash")
	}
}

func TestAddMenuItemAssignsIncreasingIDs(t *testing.T) {
	s, _ := newTestStore(t)

	seen := 0
	for i := 0; i < 5; i++ {
		item := s.AddMenuItem(models.MenuItemInput{Name: "Dish", Category: "Pizza", Status: models.MenuStatusAvailable})
		if item.ID <= seen {
			t.Fatalf("id %d not strictly greater than previous %d", item.ID, seen)
		}
		seen = item.ID
	}
}

func TestAddMenuItemEndToEnd(t *testing.T) {
	s, _ := newTestStore(t)

	item := s.AddMenuItem(models.MenuItemInput{
		Name:        "Taco",
		Category:    "Mexican",
		Description: "",
		Price:       5.50,
		Status:      models.MenuStatusAvailable,
	})

	if item.ID != 1 {
		t.Errorf("id = %d, want 1", item.ID)
	}
	if item.Price != 5.50 {
		t.Errorf("price = %v, want 5.50", item.Price)
	}
	today := testNow.Format(models.DateLayout)
	if item.CreatedAt != today || item.UpdatedAt != today {
		t.Errorf("stamps = %s/%s, want %s for both", item.CreatedAt, item.UpdatedAt, today)
	}
}

func TestUpdateMenuItemKeepsCreatedAt(t *testing.T) {
	s, _ := newTestStore(t)

	item := s.AddMenuItem(models.MenuItemInput{Name: "Pie", Category: "Desserts"})
	name := "Apple Pie"
	s.UpdateMenuItem(item.ID, models.MenuItemPatch{Name: &name})

	updated, ok := s.MenuItemByID(item.ID)
	if !ok {
		t.Fatal("item vanished after update")
	}
	if updated.Name != "Apple Pie" {
		t.Errorf("name = %q, want %q", updated.Name, "Apple Pie")
	}
	if updated.CreatedAt != item.CreatedAt {
		t.Errorf("createdAt changed: %s -> %s", item.CreatedAt, updated.CreatedAt)
	}

	// Unknown id is a silent no-op.
	s.UpdateMenuItem(999, models.MenuItemPatch{Name: &name})
}

func TestDeleteMenuItemIdempotent(t *testing.T) {
	s, _ := newTestStore(t)

	item := s.AddMenuItem(models.MenuItemInput{Name: "Soup", Category: "Salads"})
	s.DeleteMenuItem(item.ID)
	if len(s.MenuItems()) != 0 {
		t.Fatal("item still present after delete")
	}
	// Second delete is a no-op, not an error.
	s.DeleteMenuItem(item.ID)
	if len(s.MenuItems()) != 0 {
		t.Fatal("second delete changed the catalog")
	}
}

func TestAddCategoryDedup(t *testing.T) {
	s, _ := newTestStore(t)

	s.AddCategory("Pizza")
	s.AddCategory("Pizza")

	count := 0
	for _, cat := range s.Categories() {
		if cat == "Pizza" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("got %d Pizza entries, want exactly 1", count)
	}
}

func TestCategoryRenameDoesNotCascade(t *testing.T) {
	s, _ := newTestStore(t)

	s.AddCategory("Pizza")
	item := s.AddMenuItem(models.MenuItemInput{Name: "Margherita", Category: "Pizza"})

	s.UpdateCategory("Pizza", "Pizzas")

	cats := s.Categories()
	if len(cats) != 1 || cats[0] != "Pizzas" {
		t.Fatalf("categories = %v, want [Pizzas]", cats)
	}
	got, _ := s.MenuItemByID(item.ID)
	if got.Category != "Pizza" {
		t.Fatalf("menu item category = %q; the stale reference must survive the rename", got.Category)
	}

	// Deleting the category leaves the stale reference too.
	s.DeleteCategory("Pizzas")
	got, _ = s.MenuItemByID(item.ID)
	if got.Category != "Pizza" {
		t.Fatalf("menu item category = %q after category delete", got.Category)
	}
}

func TestToastLifecycle(t *testing.T) {
	s, _ := newTestStore(t)

	toast := s.AddToast("x", models.ToastError, 0)
	if len(s.Toasts()) != 1 {
		t.Fatal("toast not visible immediately after add")
	}

	// Not yet due just before the default duration.
	s.SweepToasts(testNow.Add(defaultToastDuration - time.Millisecond))
	if len(s.Toasts()) != 1 {
		t.Fatal("toast expired early")
	}

	s.SweepToasts(testNow.Add(defaultToastDuration))
	if len(s.Toasts()) != 0 {
		t.Fatal("toast still present after its duration elapsed")
	}

	// Removing an already-expired toast is a no-op.
	s.RemoveToast(toast.ID)
}

func TestRemoveToastEarly(t *testing.T) {
	s, _ := newTestStore(t)

	toast := s.AddToast("bye", models.ToastInfo, 0)
	s.RemoveToast(toast.ID)
	if len(s.Toasts()) != 0 {
		t.Fatal("toast still present after explicit removal")
	}
	// The queued expiry then fires against nothing.
	if dropped := s.SweepToasts(testNow.Add(time.Minute)); dropped != 1 {
		t.Fatalf("swept %d expiries, want 1", dropped)
	}
}

func TestCreateUserReusesFreedIDs(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)

	if err := s.SeedIfEmpty(ctx, nil, nil, []models.User{{ID: 1, FullName: "John Admin", Role: models.RoleAdmin}}, nil, nil); err != nil {
		t.Fatalf("seed: %v", err)
	}

	bob, err := s.CreateUser(ctx, models.User{FullName: "Bob"})
	if err != nil {
		t.Fatalf("create Bob: %v", err)
	}
	if bob.ID != 2 {
		t.Fatalf("Bob id = %d, want 2", bob.ID)
	}

	// Delete the entry holding the highest id; the next create computes
	// max(remaining ids, 0)+1 over what is left and reuses it: 2, not 3.
	if err := s.DeleteUser(ctx, bob.ID); err != nil {
		t.Fatalf("delete Bob: %v", err)
	}
	carol, err := s.CreateUser(ctx, models.User{FullName: "Carol"})
	if err != nil {
		t.Fatalf("create Carol: %v", err)
	}
	if carol.ID != 2 {
		t.Fatalf("Carol id = %d, want 2 (freed by Bob's delete), not 3", carol.ID)
	}

	// Deleting a lower id does not shift anything: {1,2} minus 1 leaves
	// max 2, so the next id is 3.
	if err := s.DeleteUser(ctx, 1); err != nil {
		t.Fatalf("delete admin: %v", err)
	}
	dave, err := s.CreateUser(ctx, models.User{FullName: "Dave"})
	if err != nil {
		t.Fatalf("create Dave: %v", err)
	}
	if dave.ID != 3 {
		t.Fatalf("Dave id = %d, want 3", dave.ID)
	}

	// The persisted directory matches the in-memory one.
	raw, ok, _ := kv.Get(ctx, models.KeyUsers)
	if !ok {
		t.Fatal("users key missing")
	}
	var persisted []models.User
	if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
		t.Fatalf("parse persisted users: %v", err)
	}
	if len(persisted) != len(s.Users()) {
		t.Fatalf("persisted %d users, in-memory %d", len(persisted), len(s.Users()))
	}
}

func TestAdminUpdateDoesNotTouchSession(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	created, err := s.CreateUser(ctx, models.User{FullName: "Original", Email: "o@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Login(ctx, created); err != nil {
		t.Fatalf("login: %v", err)
	}

	renamed := "Renamed"
	if err := s.UpdateUserAsAdmin(ctx, created.ID, models.UserPatch{FullName: &renamed}); err != nil {
		t.Fatalf("admin update: %v", err)
	}

	entry, _ := s.UserByID(created.ID)
	if entry.FullName != "Renamed" {
		t.Errorf("directory entry = %q, want Renamed", entry.FullName)
	}
	_, sessionUser := s.Session()
	if sessionUser.FullName != "Original" {
		t.Errorf("session copy = %q; the session stays unsynced from the directory", sessionUser.FullName)
	}
}

func TestProfileUpdateDoesNotTouchDirectory(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	created, err := s.CreateUser(ctx, models.User{FullName: "Original", Email: "p@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Login(ctx, created); err != nil {
		t.Fatalf("login: %v", err)
	}

	renamed := "Session Name"
	if err := s.UpdateProfile(ctx, models.UserPatch{FullName: &renamed}); err != nil {
		t.Fatalf("profile update: %v", err)
	}

	_, sessionUser := s.Session()
	if sessionUser.FullName != "Session Name" {
		t.Errorf("session copy = %q, want Session Name", sessionUser.FullName)
	}
	entry, _ := s.UserByID(created.ID)
	if entry.FullName != "Original" {
		t.Errorf("directory entry = %q; profile updates must not write back", entry.FullName)
	}
}

func TestNotifications(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)

	a, err := s.AddNotification(ctx, models.Notification{Title: "A", Message: "first", Type: models.ToastInfo})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	b, err := s.AddNotification(ctx, models.Notification{Title: "B", Message: "second", Type: models.ToastWarning})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if a.ID == b.ID || a.ID == "" {
		t.Fatalf("ids not unique: %q vs %q", a.ID, b.ID)
	}
	if a.Timestamp == "" {
		t.Error("timestamp not defaulted")
	}
	if got := s.UnreadNotificationCount(); got != 2 {
		t.Fatalf("unread = %d, want 2", got)
	}

	if err := s.MarkNotificationAsRead(ctx, a.ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if got := s.UnreadNotificationCount(); got != 1 {
		t.Fatalf("unread after mark = %d, want 1", got)
	}

	if err := s.MarkAllNotificationsAsRead(ctx); err != nil {
		t.Fatalf("mark all: %v", err)
	}
	if got := s.UnreadNotificationCount(); got != 0 {
		t.Fatalf("unread after mark all = %d, want 0", got)
	}

	if err := s.DeleteNotification(ctx, b.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(s.Notifications()) != 1 {
		t.Fatalf("notifications = %d, want 1", len(s.Notifications()))
	}

	if err := s.ClearAllNotifications(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(s.Notifications()) != 0 {
		t.Fatal("notifications not cleared")
	}
	if _, ok, _ := kv.Get(ctx, models.KeyNotifications); ok {
		t.Error("notifications key still present after clear")
	}

	// Operations on unknown ids are silent no-ops.
	if err := s.MarkNotificationAsRead(ctx, "nope"); err != nil {
		t.Errorf("mark unknown: %v", err)
	}
	if err := s.DeleteNotification(ctx, "nope"); err != nil {
		t.Errorf("delete unknown: %v", err)
	}
}

func TestStateSurvivesReload(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()

	s1, err := New(ctx, kv, WithManualSweep())
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := s1.CreateUser(ctx, models.User{FullName: "Keeper", Email: "k@example.com"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s1.Login(ctx, models.User{ID: 1, FullName: "Keeper", Email: "k@example.com"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := s1.ToggleTheme(ctx); err != nil {
		t.Fatalf("theme: %v", err)
	}

	s2, err := New(ctx, kv, WithManualSweep())
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(s2.Users()) != 1 {
		t.Errorf("users after reload = %d, want 1", len(s2.Users()))
	}
	loggedIn, user := s2.Session()
	if !loggedIn || user == nil || user.Email != "k@example.com" {
		t.Errorf("session after reload = %t, %v", loggedIn, user)
	}
	if !s2.IsDark() {
		t.Error("theme flag lost across reload")
	}
	// Menu catalog is session state and starts empty again.
	if len(s2.MenuItems()) != 0 {
		t.Errorf("menu after reload = %d items, want 0", len(s2.MenuItems()))
	}
}

func TestOrders(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	order, err := s.AddOrder(ctx, models.Order{Customer: "Ada", ItemCount: 2, Total: 20})
	if err != nil {
		t.Fatalf("add order: %v", err)
	}
	if order.ID != 1 || order.OrderNumber != "#ORD-001" {
		t.Fatalf("order = %d %q, want 1 #ORD-001", order.ID, order.OrderNumber)
	}
	if order.Status != models.OrderStatusPending {
		t.Fatalf("status = %q, want pending", order.Status)
	}

	if err := s.UpdateOrderStatus(ctx, order.ID, models.OrderStatusCompleted); err != nil {
		t.Fatalf("update status: %v", err)
	}
	got, _ := s.OrderByID(order.ID)
	if got.Status != models.OrderStatusCompleted {
		t.Fatalf("status = %q, want completed", got.Status)
	}

	// Unknown id is a silent no-op.
	if err := s.UpdateOrderStatus(ctx, 999, models.OrderStatusCancelled); err != nil {
		t.Fatalf("unknown order update: %v", err)
	}
}
