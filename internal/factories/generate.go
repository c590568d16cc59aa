package factories

import (
	"fmt"
	"math/rand"

	"github.com/jaswdr/faker"

	"restodash/internal/models"
)

var fake = faker.New()

var menuItemsByCategory = map[string][]string{
	"Burgers":   {"Classic Cheeseburger", "Veggie Burger", "BBQ Bacon Burger", "Mushroom Swiss Burger"},
	"Pizza":     {"Margherita", "Pepperoni", "Hawaiian", "Veggie Supreme"},
	"Salads":    {"Caesar Salad", "Greek Salad", "Cobb Salad", "Quinoa Salad"},
	"Desserts":  {"Tiramisu", "Cheesecake", "Apple Pie", "Chocolate Lava Cake"},
	"Beverages": {"Fresh Lemonade", "Iced Tea", "Chocolate Shake", "Cold Brew"},
}

var staffRoles = []string{models.RoleUser, models.RoleUser, models.RoleUser, models.RoleManager}

// MenuItemFactory generates plausible catalog entries for bulk seeding.
type MenuItemFactory struct{}

func (mf *MenuItemFactory) CreateMenuItem(category, stamp string) models.MenuItem {
	status := models.MenuStatusAvailable
	if rand.Float64() < 0.1 {
		status = models.MenuStatusOutOfStock
	}
	return models.MenuItem{
		Name:        randomMenuItemName(category),
		Category:    category,
		Description: fake.Lorem().Sentence(8),
		Price:       fake.Float64(2, 5, 50),
		Image:       fmt.Sprintf("https://via.placeholder.com/300x200?text=%s", fake.Lorem().Word()),
		Status:      status,
		CreatedAt:   stamp,
		UpdatedAt:   stamp,
	}
}

func randomMenuItemName(category string) string {
	if names, ok := menuItemsByCategory[category]; ok {
		return names[rand.Intn(len(names))]
	}
	return "Special of the Day"
}

// UserFactory generates directory accounts for bulk seeding.
type UserFactory struct{}

func (uf *UserFactory) CreateUser(passwordHash, stamp string) models.User {
	status := models.UserStatusActive
	if rand.Float64() < 0.15 {
		status = models.UserStatusOnLeave
	}
	return models.User{
		FullName:     fake.Person().Name(),
		Email:        fake.Internet().Email(),
		Phone:        fake.Phone().Number(),
		Address:      fake.Address().Address(),
		Role:         staffRoles[rand.Intn(len(staffRoles))],
		PasswordHash: passwordHash,
		Status:       status,
		JoinDate:     stamp,
		CreatedAt:    stamp,
		UpdatedAt:    stamp,
	}
}

// OrderFactory generates order rows for bulk seeding.
type OrderFactory struct{}

func (of *OrderFactory) CreateOrder(stamp string) models.Order {
	statuses := []string{
		models.OrderStatusPending,
		models.OrderStatusProcessing,
		models.OrderStatusCompleted,
		models.OrderStatusCompleted,
		models.OrderStatusCancelled,
	}
	return models.Order{
		Customer:  fake.Person().Name(),
		ItemCount: fake.IntBetween(1, 6),
		Total:     fake.Float64(2, 8, 120),
		Status:    statuses[rand.Intn(len(statuses))],
		Date:      stamp,
	}
}
