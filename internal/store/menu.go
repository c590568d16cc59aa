package store

import (
	"restodash/internal/models"
)

// MenuItems returns a copy of the menu catalog.
func (s *Store) MenuItems() []models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.MenuItem, len(s.menuItems))
	copy(items, s.menuItems)
	return items
}

// MenuItemByID returns the matching item, or false when the id is unknown.
func (s *Store) MenuItemByID(id int) (models.MenuItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.menuItems {
		if item.ID == id {
			return item, true
		}
	}
	return models.MenuItem{}, false
}

// AddMenuItem appends a new item with the next id and today's date stamps.
// Duplicate names are permitted; the menu catalog is session state and is not
// persisted, matching the original layout.
func (s *Store) AddMenuItem(input models.MenuItemInput) models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.today()
	item := models.MenuItem{
		ID:          nextID(menuItemIDs(s.menuItems)),
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		Status:      input.Status,
		CreatedAt:   today,
		UpdatedAt:   today,
	}
	s.menuItems = append(s.menuItems, item)
	return item
}

// UpdateMenuItem patches the matching entry and refreshes updatedAt, leaving
// createdAt alone. Unknown ids are a silent no-op.
func (s *Store) UpdateMenuItem(id int, patch models.MenuItemPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.menuItems {
		if s.menuItems[i].ID == id {
			patch.Apply(&s.menuItems[i])
			s.menuItems[i].UpdatedAt = s.today()
			return
		}
	}
}

// DeleteMenuItem removes the matching entry. Unknown ids are a silent no-op,
// so calling it twice is harmless.
func (s *Store) DeleteMenuItem(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.menuItems[:0]
	for _, item := range s.menuItems {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.menuItems = kept
}

// Categories returns a copy of the category list.
func (s *Store) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	cats := make([]string, len(s.categories))
	copy(cats, s.categories)
	return cats
}

// AddCategory appends a category, deduplicating by exact value.
func (s *Store) AddCategory(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cat := range s.categories {
		if cat == name {
			return
		}
	}
	s.categories = append(s.categories, name)
}

// UpdateCategory renames a category in place. Menu items keep whatever
// category string they were created with; renames do not cascade.
func (s *Store) UpdateCategory(oldName, newName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, cat := range s.categories {
		if cat == oldName {
			s.categories[i] = newName
		}
	}
}

// DeleteCategory removes a category by value. Menu items referencing it keep
// the stale name.
func (s *Store) DeleteCategory(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.categories[:0]
	for _, cat := range s.categories {
		if cat != name {
			kept = append(kept, cat)
		}
	}
	s.categories = kept
}

// nextID is max(existing ids, 0) + 1, computed over whatever ids remain, so
// ids can be reused after a delete.
func nextID(ids []int) int {
	max := 0
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func menuItemIDs(items []models.MenuItem) []int {
	ids := make([]int, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}
