// internal/domain/cart/entity.go
package cart

import (
	"encoding/json"
	"fmt"
)

// Line is one product-and-quantity entry. Name, price and image are
// snapshotted from the catalog when the line is created.
type Line struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Image    string `json:"img"`
	Quantity int    `json:"qty"`
}

// MaxQuantity is the largest quantity a single line can hold
const MaxQuantity = 999

// Total returns price times quantity
func (l Line) Total() int64 {
	return l.Price * int64(l.Quantity)
}

// Totals are derived from the lines on demand and never stored
type Totals struct {
	Subtotal    int64 `json:"subtotal"`
	ShippingFee int64 `json:"shipping_fee"`
	GrandTotal  int64 `json:"grand_total"`
}

// CalculateTotals computes subtotal, flat shipping (only when there is at
// least one line) and grand total
func CalculateTotals(lines []Line, shippingFee int64) Totals {
	var totals Totals
	for _, l := range lines {
		totals.Subtotal += l.Total()
	}
	if len(lines) > 0 {
		totals.ShippingFee = shippingFee
	}
	totals.GrandTotal = totals.Subtotal + totals.ShippingFee
	return totals
}

// MarshalLines encodes lines in the slot format: a JSON array of
// {id, name, price, img, qty}
func MarshalLines(lines []Line) ([]byte, error) {
	if lines == nil {
		lines = []Line{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return nil, fmt.Errorf("marshal cart failed: %w", err)
	}
	return data, nil
}

// UnmarshalLines decodes a slot payload. Lines without an id or with a
// quantity below 1 are dropped, quantities are capped at MaxQuantity, and
// repeated ids are folded into the first occurrence.
func UnmarshalLines(data []byte) ([]Line, error) {
	var raw []Line
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal cart failed: %w", err)
	}

	lines := make([]Line, 0, len(raw))
	seen := make(map[string]int, len(raw))
	for _, l := range raw {
		if l.ID == "" || l.Quantity < 1 {
			continue
		}
		if l.Quantity > MaxQuantity {
			l.Quantity = MaxQuantity
		}
		if i, ok := seen[l.ID]; ok {
			lines[i].Quantity = addQuantity(lines[i].Quantity, l.Quantity)
			continue
		}
		seen[l.ID] = len(lines)
		lines = append(lines, l)
	}
	return lines, nil
}

// addQuantity returns qty+delta bounded to [1, MaxQuantity] without overflowing
func addQuantity(qty, delta int) int {
	switch {
	case delta > 0 && delta > MaxQuantity-qty:
		return MaxQuantity
	case delta < 0 && delta < 1-qty:
		return 1
	}
	return qty + delta
}
