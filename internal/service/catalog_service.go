package service

import (
	"fmt"
	"strconv"
	"strings"

	"kfc-ordering/internal/domain"
)

const defaultItemImage = "🍽️"

// NewMenuItem is the administrator's create form. Price arrives as entered
// and is parsed here.
type NewMenuItem struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

// MenuItemUpdate merges into an existing item; nil fields are left alone.
type MenuItemUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Description *string  `json:"description,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Available   *bool    `json:"available,omitempty"`
}

type CatalogService struct {
	data *DataStore
}

func NewCatalogService(data *DataStore) *CatalogService {
	return &CatalogService{data: data}
}

// AddMenuItem validates and appends a catalog item. New items default to
// available with the fallback image.
func (s *CatalogService) AddMenuItem(input NewMenuItem) (*domain.MenuItem, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Price) == "" {
		return nil, fmt.Errorf("%w: name and price are required", domain.ErrValidation)
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(input.Price), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: price must be a number", domain.ErrValidation)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}

	item := domain.MenuItem{
		ID:          s.data.NextID(),
		Name:        input.Name,
		Category:    input.Category,
		Price:       domain.Round2(price),
		Description: input.Description,
		Image:       defaultItemImage,
		Available:   true,
	}
	err = s.data.Update(func(snap *domain.Snapshot) {
		snap.Menu = append(snap.Menu, item)
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateMenuItem merges updates into the matching item; unknown ids no-op.
func (s *CatalogService) UpdateMenuItem(id string, updates MenuItemUpdate) error {
	return s.data.Update(func(snap *domain.Snapshot) {
		for i := range snap.Menu {
			if snap.Menu[i].ID != id {
				continue
			}
			if updates.Name != nil {
				snap.Menu[i].Name = *updates.Name
			}
			if updates.Category != nil {
				snap.Menu[i].Category = *updates.Category
			}
			if updates.Price != nil {
				snap.Menu[i].Price = domain.Round2(*updates.Price)
			}
			if updates.Description != nil {
				snap.Menu[i].Description = *updates.Description
			}
			if updates.Image != nil {
				snap.Menu[i].Image = *updates.Image
			}
			if updates.Available != nil {
				snap.Menu[i].Available = *updates.Available
			}
			return
		}
	})
}

// DeleteMenuItem removes the item from the catalog only. Historical orders
// keep their own line copies; confirmation is the caller's concern.
func (s *CatalogService) DeleteMenuItem(id string) error {
	return s.data.Update(func(snap *domain.Snapshot) {
		for i := range snap.Menu {
			if snap.Menu[i].ID == id {
				snap.Menu = append(snap.Menu[:i], snap.Menu[i+1:]...)
				return
			}
		}
	})
}

// ToggleAvailability flips the item's availability flag.
func (s *CatalogService) ToggleAvailability(id string) error {
	return s.data.Update(func(snap *domain.Snapshot) {
		for i := range snap.Menu {
			if snap.Menu[i].ID == id {
				snap.Menu[i].Available = !snap.Menu[i].Available
				return
			}
		}
	})
}

// FullMenu returns every item, including unavailable ones — the admin view.
func (s *CatalogService) FullMenu() []domain.MenuItem {
	return s.data.Menu()
}

// CustomerMenu returns only available items.
func (s *CatalogService) CustomerMenu() []domain.MenuItem {
	var out []domain.MenuItem
	for _, item := range s.data.Menu() {
		if item.Available {
			out = append(out, item)
		}
	}
	return out
}

// Categories lists distinct categories in first-seen menu order.
func (s *CatalogService) Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, item := range s.data.Menu() {
		if !seen[item.Category] {
			seen[item.Category] = true
			out = append(out, item.Category)
		}
	}
	return out
}

// FindItem looks up a catalog item by id.
func (s *CatalogService) FindItem(id string) (*domain.MenuItem, error) {
	for _, item := range s.data.Menu() {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, domain.ErrNotFound
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
