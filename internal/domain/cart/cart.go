// internal/domain/cart/cart.go
package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/hooked-store/storefront/internal/domain/catalog"
)

// ProductLookup resolves product ids against the catalog
type ProductLookup interface {
	Find(id string) (catalog.Product, bool)
}

// Cart is the per-session cart aggregate. Lines keep insertion order and
// there is at most one line per product id. Every state change is written
// through to the slot; the returned error only reports that write, the
// in-memory change is kept either way.
type Cart struct {
	mu          sync.Mutex
	key         string
	lines       []Line
	catalog     ProductLookup
	store       Store
	shippingFee int64
}

// AddItem adds one unit of the product, creating a line snapshotted from the
// catalog if needed. Unknown products are ignored.
func (c *Cart) AddItem(ctx context.Context, productID string) error {
	product, ok := c.catalog.Find(productID)
	if !ok {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(productID); i >= 0 {
		c.lines[i].Quantity = addQuantity(c.lines[i].Quantity, 1)
	} else {
		c.lines = append(c.lines, Line{
			ID:       product.ID,
			Name:     product.Name,
			Price:    product.Price,
			Image:    product.Image,
			Quantity: 1,
		})
	}
	return c.persist(ctx)
}

// ChangeQuantity adjusts a line's quantity by delta. The result stays within
// [1, MaxQuantity]; use RemoveItem to delete a line. Missing lines are ignored.
func (c *Cart) ChangeQuantity(ctx context.Context, productID string, delta int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(productID)
	if i < 0 {
		return nil
	}

	c.lines[i].Quantity = addQuantity(c.lines[i].Quantity, delta)
	return c.persist(ctx)
}

// RemoveItem deletes the line for productID if present
func (c *Cart) RemoveItem(ctx context.Context, productID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(productID)
	if i < 0 {
		return nil
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return c.persist(ctx)
}

// Clear empties the cart
func (c *Cart) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = []Line{}
	return c.persist(ctx)
}

// ComputeTotals returns subtotal, shipping and grand total for the current lines
func (c *Cart) ComputeTotals() Totals {
	c.mu.Lock()
	defer c.mu.Unlock()

	return CalculateTotals(c.lines, c.shippingFee)
}

// Lines returns a copy of the lines in display order
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Count returns the sum of all line quantities
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

// Empty reports whether the cart has no lines
func (c *Cart) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.lines) == 0
}

// ShippingFee returns the flat fee applied to non-empty carts
func (c *Cart) ShippingFee() int64 {
	return c.shippingFee
}

func (c *Cart) indexOf(productID string) int {
	for i := range c.lines {
		if c.lines[i].ID == productID {
			return i
		}
	}
	return -1
}

// persist must be called with c.mu held
func (c *Cart) persist(ctx context.Context) error {
	data, err := MarshalLines(c.lines)
	if err != nil {
		return err
	}
	if err := c.store.Save(ctx, c.key, data); err != nil {
		return fmt.Errorf("failed to persist cart %s: %w", c.key, err)
	}
	return nil
}
