package menu

import (
	"context"
	"fmt"
	"sort"

	"github.com/barline/barline/service/meta"
)

// Menu maps item names to their service cost in work units. The table
// is fixed for the lifetime of a dispatcher.
type Menu map[string]int

// Default returns the built-in service-cost table.
func Default() Menu {
	return Menu{
		"americano":     2,
		"latte":         3,
		"cappuccino":    3,
		"mocha":         4,
		"tea":           1,
		"macchiato":     2,
		"hot_chocolate": 4,
	}
}

// Cost returns the service cost of an item and whether it is served.
func (m Menu) Cost(item string) (int, bool) {
	cost, ok := m[item]
	return cost, ok
}

// Clone returns an independent copy of the menu.
func (m Menu) Clone() Menu {
	ret := make(Menu, len(m))
	for name, cost := range m {
		ret[name] = cost
	}
	return ret
}

// Entry is a single priced item.
type Entry struct {
	Name string
	Cost int
}

// Entries returns all items sorted lexicographically by name.
func (m Menu) Entries() []Entry {
	ret := make([]Entry, 0, len(m))
	for name, cost := range m {
		ret = append(ret, Entry{Name: name, Cost: cost})
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].Name < ret[j].Name })
	return ret
}

// Validate ensures every item carries a positive cost.
func (m Menu) Validate() error {
	for name, cost := range m {
		if cost < 1 {
			return fmt.Errorf("menu item %q: cost must be positive, had %v", name, cost)
		}
	}
	return nil
}

// Service loads menus from YAML assets.
type Service struct {
	metaService *meta.Service
}

// NewService creates a menu loading service; a nil metaService defaults
// to the standard loader.
func NewService(metaService *meta.Service) *Service {
	if metaService == nil {
		metaService = meta.New(nil, "")
	}
	return &Service{metaService: metaService}
}

// Load reads a YAML item→cost document from the supplied URL.
func (s *Service) Load(ctx context.Context, URL string) (Menu, error) {
	var loaded map[string]int
	if err := s.metaService.Load(ctx, URL, &loaded); err != nil {
		return nil, err
	}
	ret := Menu(loaded)
	if err := ret.Validate(); err != nil {
		return nil, fmt.Errorf("invalid menu at %s: %w", URL, err)
	}
	return ret, nil
}
