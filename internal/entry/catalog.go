package entry

import (
	"context"
	"fmt"
	"sort"
)

// Item is one catalog entry mapping an item code to its display name.
type Item struct {
	Code string `json:"item_code" yaml:"item_code"`
	Name string `json:"item_name" yaml:"item_name"`
}

// ItemSource fetches the full item catalog, typically from the remote
// persistence gateway.
type ItemSource interface {
	FetchItems(ctx context.Context) ([]Item, error)
}

// Catalog is a read-only snapshot of the item master, loaded once at form
// mount. A failed load leaves the catalog usable in degraded mode: every
// lookup resolves to the empty string.
type Catalog struct {
	names  map[string]string
	loaded bool
}

func NewCatalog() *Catalog {
	return &Catalog{names: map[string]string{}}
}

// Load fetches the catalog from src and replaces the snapshot. On error
// the previous snapshot is kept and manual code entry stays possible.
func (c *Catalog) Load(ctx context.Context, src ItemSource) error {
	items, err := src.FetchItems(ctx)
	if err != nil {
		return fmt.Errorf("load item catalog: %w", err)
	}
	names := make(map[string]string, len(items))
	for _, it := range items {
		names[it.Code] = it.Name
	}
	c.names = names
	c.loaded = true
	return nil
}

// Resolve returns the name for a code, or "" when the code is unknown.
func (c *Catalog) Resolve(code string) string {
	return c.names[code]
}

// Loaded reports whether a snapshot has been fetched successfully.
func (c *Catalog) Loaded() bool {
	return c.loaded
}

// Items returns the snapshot sorted by code, for selection lists.
func (c *Catalog) Items() []Item {
	items := make([]Item, 0, len(c.names))
	for code, name := range c.names {
		items = append(items, Item{Code: code, Name: name})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Code < items[j].Code })
	return items
}
