package models

type Order struct {
	ID          int     `json:"id"`
	OrderNumber string  `json:"order_number"`
	Customer    string  `json:"customer"`
	ItemCount   int     `json:"item_count"`
	Total       float64 `json:"total"`
	Status      string  `json:"status"`
	Date        string  `json:"date"`
}

// OrderMetrics aggregates the order list for the reports screen.
type OrderMetrics struct {
	TotalOrders    int
	TotalRevenue   float64
	AvgOrderValue  float64
	CompletionRate float64
	ByStatus       map[string]int
	OrdersByDate   map[string]int
}
