package entry

import (
	"context"
	"errors"
	"testing"
)

type failingSource struct{}

func (failingSource) FetchItems(ctx context.Context) ([]Item, error) {
	return nil, errors.New("boom")
}

func TestCatalogLoadAndResolve(t *testing.T) {
	c := newTestCatalog(t,
		Item{Code: "A1", Name: "Widget"},
		Item{Code: "B1", Name: "Sprocket"},
	)

	if !c.Loaded() {
		t.Error("Loaded() = false after a successful load")
	}
	if got := c.Resolve("A1"); got != "Widget" {
		t.Errorf("Resolve(A1) = %q, want Widget", got)
	}
	if got := c.Resolve("nope"); got != "" {
		t.Errorf("Resolve(nope) = %q, want empty", got)
	}
}

func TestCatalogLoadFailure(t *testing.T) {
	c := NewCatalog()
	if err := c.Load(context.Background(), failingSource{}); err == nil {
		t.Fatal("Load() = nil, want error")
	}
	if c.Loaded() {
		t.Error("Loaded() = true after a failed load")
	}
	// Degraded mode: lookups still answer, with empty names.
	if got := c.Resolve("A1"); got != "" {
		t.Errorf("Resolve(A1) = %q, want empty", got)
	}
}

func TestCatalogItemsSorted(t *testing.T) {
	c := newTestCatalog(t,
		Item{Code: "B1", Name: "Sprocket"},
		Item{Code: "A1", Name: "Widget"},
	)
	items := c.Items()
	if len(items) != 2 || items[0].Code != "A1" || items[1].Code != "B1" {
		t.Errorf("Items() = %+v, want sorted by code", items)
	}
}
