package pricing

import (
	"sort"

	"event-economics/core/types"
	"event-economics/internal/errors"
)

// Catalog is the set of add-ons a client may select, keyed by id
type Catalog struct {
	items map[string]types.AddonLine
	order []string
}

// NewCatalog builds a catalog, rejecting duplicate or malformed entries
func NewCatalog(items []types.AddonLine) (*Catalog, error) {
	c := &Catalog{items: make(map[string]types.AddonLine, len(items))}
	for _, it := range items {
		if it.ID == "" {
			return nil, errors.InvalidInput("addons", "catalog entry without id")
		}
		if _, dup := c.items[it.ID]; dup {
			return nil, errors.InvalidInput("addons", "duplicate catalog entry %q", it.ID)
		}
		if it.UnitPrice < 0 {
			return nil, errors.InvalidInput("addons", "catalog entry %q has negative price", it.ID)
		}
		if !it.BillingUnit.IsValid() {
			return nil, errors.InvalidInput("addons", "catalog entry %q has unknown billing unit %q", it.ID, it.BillingUnit)
		}
		c.items[it.ID] = it
		c.order = append(c.order, it.ID)
	}
	return c, nil
}

// Get returns one entry
func (c *Catalog) Get(id string) (types.AddonLine, bool) {
	it, ok := c.items[id]
	return it, ok
}

// List returns entries in catalog order
func (c *Catalog) List() []types.AddonLine {
	out := make([]types.AddonLine, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

// Resolve maps selected ids to catalog lines, preserving selection order.
// Unknown and repeated ids are rejected.
func (c *Catalog) Resolve(ids []string) ([]types.AddonLine, error) {
	out := make([]types.AddonLine, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return nil, errors.InvalidInput("selected_addons", "duplicate add-on %q", id)
		}
		seen[id] = true
		it, ok := c.items[id]
		if !ok {
			return nil, errors.InvalidInput("selected_addons", "unknown add-on %q (available: %v)", id, c.ids())
		}
		out = append(out, it)
	}
	return out, nil
}

func (c *Catalog) ids() []string {
	ids := append([]string(nil), c.order...)
	sort.Strings(ids)
	return ids
}
