package reports

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"restodash/internal/models"
)

// Summary is the headline block on the dashboard screen.
type Summary struct {
	MenuItems     int
	Categories    int
	Users         int
	Unread        int
	TotalOrders   int
	TotalRevenue  float64
	AvgOrderValue float64
}

// Summarize derives the dashboard counters from current state.
func Summarize(menu []models.MenuItem, categories []string, users []models.User, unread int, orders []models.Order) Summary {
	s := Summary{
		MenuItems:  len(menu),
		Categories: len(categories),
		Users:      len(users),
		Unread:     unread,
	}
	for _, o := range orders {
		if o.Status == models.OrderStatusCancelled {
			continue
		}
		s.TotalOrders++
		s.TotalRevenue += o.Total
	}
	if s.TotalOrders > 0 {
		s.AvgOrderValue = s.TotalRevenue / float64(s.TotalOrders)
	}
	return s
}

// OrderMetrics aggregates the order sheet for the reports screen.
func OrderMetrics(orders []models.Order) models.OrderMetrics {
	m := models.OrderMetrics{
		ByStatus:     make(map[string]int),
		OrdersByDate: make(map[string]int),
	}
	completed := 0
	for _, o := range orders {
		m.TotalOrders++
		m.ByStatus[o.Status]++
		m.OrdersByDate[o.Date]++
		if o.Status == models.OrderStatusCancelled {
			continue
		}
		m.TotalRevenue += o.Total
		if o.Status == models.OrderStatusCompleted {
			completed++
		}
	}
	if m.TotalOrders > 0 {
		m.AvgOrderValue = m.TotalRevenue / float64(m.TotalOrders)
		m.CompletionRate = float64(completed) / float64(m.TotalOrders)
	}
	return m
}

// PopularCategories counts menu items per category, stale references
// included, so a renamed category shows up under both names.
func PopularCategories(menu []models.MenuItem) map[string]int {
	counts := make(map[string]int)
	for _, item := range menu {
		counts[item.Category]++
	}
	return counts
}

// Page is one slice of a paginated listing.
type Page struct {
	Number     int
	TotalPages int
	Total      int
}

// Paginate slices orders the way the orders screen does: fixed page size,
// page numbers clamped into range, 1-based.
func Paginate(orders []models.Order, page, perPage int) ([]models.Order, Page) {
	if perPage < 1 {
		perPage = 10
	}
	totalPages := (len(orders) + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > len(orders) {
		start = len(orders)
	}
	if end > len(orders) {
		end = len(orders)
	}
	return orders[start:end], Page{Number: page, TotalPages: totalPages, Total: len(orders)}
}

// WriteOrdersCSV exports the order sheet, header row first.
func WriteOrdersCSV(w io.Writer, orders []models.Order) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"order_number", "customer", "items", "total", "status", "date"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, o := range orders {
		record := []string{
			o.OrderNumber,
			o.Customer,
			strconv.Itoa(o.ItemCount),
			strconv.FormatFloat(o.Total, 'f', 2, 64),
			o.Status,
			o.Date,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
