// Package catalog defines the product data a menu board draws from: products
// with decimal prices, grouped into named categories, stored as JSON
// documents that are edited and versioned independently of board templates.
package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
)

// =============================================================================
// TYPES
// =============================================================================

// Product is a single sellable item. Prices use decimal arithmetic so that
// catalog round-trips never accumulate float drift.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit,omitempty"`
}

// Group is a named category of products, e.g. "Draft Beer" or "Burgers".
type Group struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Products []Product `json:"products"`
}

// Catalog is the root document: every group and product a location sells.
// Board templates reference groups and products by ID only.
type Catalog struct {
	Name     string  `json:"name,omitempty"`
	Currency string  `json:"currency,omitempty"`
	Groups   []Group `json:"groups"`
}

// =============================================================================
// LOOKUPS
// =============================================================================

// Group returns the group with the given ID, or false if absent.
func (c *Catalog) Group(id string) (*Group, bool) {
	for i := range c.Groups {
		if c.Groups[i].ID == id {
			return &c.Groups[i], true
		}
	}
	return nil, false
}

// Product returns the product with the given ID from any group, or false if
// absent.
func (c *Catalog) Product(id string) (*Product, bool) {
	for i := range c.Groups {
		for j := range c.Groups[i].Products {
			if c.Groups[i].Products[j].ID == id {
				return &c.Groups[i].Products[j], true
			}
		}
	}
	return nil, false
}

// Product returns the product with the given ID within this group, or false
// if absent.
func (g *Group) Product(id string) (*Product, bool) {
	for i := range g.Products {
		if g.Products[i].ID == id {
			return &g.Products[i], true
		}
	}
	return nil, false
}

// GroupCount returns the number of groups.
func (c *Catalog) GroupCount() int { return len(c.Groups) }

// ProductCount returns the total number of products across all groups.
func (c *Catalog) ProductCount() int {
	n := 0
	for i := range c.Groups {
		n += len(c.Groups[i].Products)
	}
	return n
}

// =============================================================================
// SERIALIZATION
// =============================================================================

// Marshal serializes the catalog to indented JSON.
func (c *Catalog) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal catalog: %w", err)
	}
	return data, nil
}

// Unmarshal deserializes a catalog from JSON.
func Unmarshal(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}
	return &c, nil
}

// Write writes the catalog as JSON to the given writer.
func (c *Catalog) Write(w io.Writer) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}

// Read reads a catalog from the given reader.
func Read(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Unmarshal(data)
}

// WriteFile writes the catalog to a JSON file.
func (c *Catalog) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return c.Write(f)
}

// ReadFile reads a catalog from a JSON file.
func ReadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
