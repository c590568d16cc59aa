package factories

import (
	"time"

	"github.com/lucsky/cuid"

	"restodash/internal/models"
)

// DefaultCategories is the category list a fresh session starts with.
func DefaultCategories() []string {
	return []string{"Burgers", "Pizza", "Salads", "Desserts", "Beverages"}
}

// DefaultMenuItems is the sample catalog a fresh session starts with.
func DefaultMenuItems() []models.MenuItem {
	stamp := "2025-01-15"
	return []models.MenuItem{
		{
			ID:          1,
			Name:        "Grilled Chicken Burger",
			Category:    "Burgers",
			Description: "Delicious grilled chicken with fresh vegetables",
			Price:       12.99,
			Image:       "https://via.placeholder.com/300x200?text=Chicken+Burger",
			Status:      models.MenuStatusAvailable,
			CreatedAt:   stamp,
			UpdatedAt:   stamp,
		},
		{
			ID:          2,
			Name:        "Classic Cheeseburger",
			Category:    "Burgers",
			Description: "Beef patty with melted cheese and all the toppings",
			Price:       10.99,
			Image:       "https://via.placeholder.com/300x200?text=Cheeseburger",
			Status:      models.MenuStatusAvailable,
			CreatedAt:   stamp,
			UpdatedAt:   stamp,
		},
		{
			ID:          3,
			Name:        "Margherita Pizza",
			Category:    "Pizza",
			Description: "Fresh mozzarella, basil, and tomato sauce",
			Price:       14.99,
			Image:       "https://via.placeholder.com/300x200?text=Margherita+Pizza",
			Status:      models.MenuStatusAvailable,
			CreatedAt:   stamp,
			UpdatedAt:   stamp,
		},
		{
			ID:          4,
			Name:        "Caesar Salad",
			Category:    "Salads",
			Description: "Crisp romaine lettuce with parmesan and croutons",
			Price:       9.99,
			Image:       "https://via.placeholder.com/300x200?text=Caesar+Salad",
			Status:      models.MenuStatusAvailable,
			CreatedAt:   stamp,
			UpdatedAt:   stamp,
		},
	}
}

// DefaultUsers returns the single admin account every fresh install gets.
// adminHash is the bcrypt hash of the bootstrap password.
func DefaultUsers(adminHash string) []models.User {
	stamp := "2025-01-15"
	return []models.User{
		{
			ID:           1,
			FullName:     "John Admin",
			Email:        "admin@example.com",
			Phone:        "123-456-7890",
			Address:      "123 Main St",
			Role:         models.RoleAdmin,
			PasswordHash: adminHash,
			Status:       models.UserStatusActive,
			JoinDate:     stamp,
			CreatedAt:    stamp,
			UpdatedAt:    stamp,
		},
	}
}

// DefaultNotifications is the welcome entry seeded on first launch.
func DefaultNotifications(now time.Time) []models.Notification {
	return []models.Notification{
		{
			ID:        cuid.New(),
			Title:     "Welcome",
			Message:   "Welcome to the Admin Dashboard",
			Type:      models.ToastSuccess,
			Timestamp: now.Format(time.RFC3339),
			Read:      false,
		},
	}
}

// DefaultOrders is the sample order sheet shown on the orders screen.
func DefaultOrders() []models.Order {
	return []models.Order{
		{ID: 1, OrderNumber: "#ORD-001", Customer: "John Doe", ItemCount: 3, Total: 45.99, Status: models.OrderStatusCompleted, Date: "2025-02-14"},
		{ID: 2, OrderNumber: "#ORD-002", Customer: "Jane Smith", ItemCount: 2, Total: 32.50, Status: models.OrderStatusPending, Date: "2025-02-15"},
		{ID: 3, OrderNumber: "#ORD-003", Customer: "Mike Johnson", ItemCount: 4, Total: 58.99, Status: models.OrderStatusCompleted, Date: "2025-02-15"},
		{ID: 4, OrderNumber: "#ORD-004", Customer: "Sarah Williams", ItemCount: 1, Total: 14.99, Status: models.OrderStatusCancelled, Date: "2025-02-14"},
		{ID: 5, OrderNumber: "#ORD-005", Customer: "Robert Brown", ItemCount: 5, Total: 72.50, Status: models.OrderStatusProcessing, Date: "2025-02-15"},
	}
}
