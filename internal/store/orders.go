package store

import (
	"context"
	"fmt"

	"restodash/internal/models"
)

// Orders returns a copy of the order list.
func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]models.Order, len(s.orders))
	copy(orders, s.orders)
	return orders
}

// OrderByID returns the matching order, or false.
func (s *Store) OrderByID(id int) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

// AddOrder appends an order with the next id and a derived order number,
// then persists the list.
func (s *Store) AddOrder(ctx context.Context, order models.Order) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.ID = nextID(orderIDs(s.orders))
	if order.OrderNumber == "" {
		order.OrderNumber = fmt.Sprintf("#ORD-%03d", order.ID)
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	if order.Date == "" {
		order.Date = s.today()
	}
	s.orders = append(s.orders, order)
	if err := s.persistJSON(ctx, models.KeyOrders, s.orders); err != nil {
		return order, err
	}
	return order, nil
}

// UpdateOrderStatus moves an order to a new status. Unknown ids are a no-op.
func (s *Store) UpdateOrderStatus(ctx context.Context, id int, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for i := range s.orders {
		if s.orders[i].ID == id && s.orders[i].Status != status {
			s.orders[i].Status = status
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.persistJSON(ctx, models.KeyOrders, s.orders)
}

func orderIDs(orders []models.Order) []int {
	ids := make([]int, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	return ids
}
