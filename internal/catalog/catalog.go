package catalog

import (
	"laundrypro/internal/models"
)

// Catalog is the static service catalog. Entries are fixed when the catalog
// is built; lookups are by service ID.
type Catalog struct {
	order   []string
	entries map[string]models.Service
}

// New builds a catalog from the given services, preserving their order.
func New(services ...models.Service) *Catalog {
	c := &Catalog{
		entries: make(map[string]models.Service, len(services)),
	}
	for _, svc := range services {
		if _, exists := c.entries[svc.ID]; exists {
			continue
		}
		c.order = append(c.order, svc.ID)
		c.entries[svc.ID] = svc
	}
	return c
}

// Default returns the standard laundry service catalog.
func Default() *Catalog {
	return New(
		models.Service{
			ID:          "wash-and-fold",
			Name:        "Wash & Fold",
			Description: "Your daily laundry, washed and neatly folded.",
			UnitPrice:   15,
			Unit:        "kg",
		},
		models.Service{
			ID:          "dry-cleaning",
			Name:        "Dry Cleaning",
			Description: "Professional care for delicate garments and suits.",
			UnitPrice:   50,
			Unit:        "pcs",
		},
		models.Service{
			ID:          "ironing",
			Name:        "Ironing",
			Description: "Get your clothes wrinkle-free and crisp.",
			UnitPrice:   20,
			Unit:        "pcs",
		},
	)
}

// All returns every catalog entry in catalog order.
func (c *Catalog) All() []models.Service {
	services := make([]models.Service, 0, len(c.order))
	for _, id := range c.order {
		services = append(services, c.entries[id])
	}
	return services
}

// Lookup returns the entry for the given service ID.
func (c *Catalog) Lookup(id string) (*models.Service, bool) {
	svc, ok := c.entries[id]
	if !ok {
		return nil, false
	}
	return &svc, true
}
