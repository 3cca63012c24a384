// internal/domain/checkout/entity.go
package checkout

import (
	"strings"

	"github.com/hooked-store/storefront/internal/domain/cart"
)

// Status strings shown to the shopper
const (
	StatusIncomplete  = "Please complete all fields."
	StatusRedirecting = "Redirecting to WhatsApp..."
)

// Request carries the customer's contact fields for one checkout attempt
type Request struct {
	FullName string `json:"full_name" form:"full_name"`
	Email    string `json:"email" form:"email"`
	Address  string `json:"address" form:"address"`
	Phone    string `json:"phone" form:"phone"`
}

// Normalized returns a copy with surrounding whitespace removed
func (r Request) Normalized() Request {
	return Request{
		FullName: strings.TrimSpace(r.FullName),
		Email:    strings.TrimSpace(r.Email),
		Address:  strings.TrimSpace(r.Address),
		Phone:    strings.TrimSpace(r.Phone),
	}
}

// Validate reports every field that is empty after trimming
func (r Request) Validate() error {
	n := r.Normalized()
	var missing []string
	if n.FullName == "" {
		missing = append(missing, "full_name")
	}
	if n.Email == "" {
		missing = append(missing, "email")
	}
	if n.Address == "" {
		missing = append(missing, "address")
	}
	if n.Phone == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// HandOff is the result of a successful checkout: the composed order summary
// and the deep link that carries it to the shop's messaging contact
type HandOff struct {
	URL     string      `json:"url"`
	Message string      `json:"message"`
	Lines   []cart.Line `json:"lines"`
	Totals  cart.Totals `json:"totals"`
	Status  string      `json:"status"`
}
