package models

type MenuItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"` // category name, not an id; renames do not cascade here
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// MenuItemInput is what the add/edit menu form submits.
type MenuItemInput struct {
	Name        string
	Category    string
	Description string
	Price       float64
	Image       string
	Status      string
}

// MenuItemPatch updates a subset of menu item fields in place.
type MenuItemPatch struct {
	Name        *string
	Category    *string
	Description *string
	Price       *float64
	Image       *string
	Status      *string
}

func (p MenuItemPatch) Apply(m *MenuItem) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Category != nil {
		m.Category = *p.Category
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Price != nil {
		m.Price = *p.Price
	}
	if p.Image != nil {
		m.Image = *p.Image
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
}
