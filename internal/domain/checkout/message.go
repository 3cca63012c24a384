// internal/domain/checkout/message.go
package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/hooked-store/storefront/internal/domain/cart"
	"github.com/hooked-store/storefront/internal/pkg/money"
)

// ComposeMessage renders the order summary sent through the hand-off
func ComposeMessage(shopName, paymentMethod string, req Request, lines []cart.Line, totals cart.Totals, fmtr *money.Formatter) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*New Order from %s*\n", shopName)
	b.WriteString("----------------\n")
	b.WriteString("*Customer Details:*\n")
	fmt.Fprintf(&b, "Name: %s\nEmail: %s\nAddress: %s\nPhone: %s\nPayment: %s\n\n",
		req.FullName, req.Email, req.Address, req.Phone, paymentMethod)

	b.WriteString("*Order Summary:*\n")
	for i, l := range lines {
		fmt.Fprintf(&b, "%d. %s (x%d) - %s\n", i+1, l.Name, l.Quantity, fmtr.Format(l.Total()))
	}

	fmt.Fprintf(&b, "\n*Subtotal:* %s\n", fmtr.Format(totals.Subtotal))
	fmt.Fprintf(&b, "*Shipping:* %s\n", fmtr.Format(totals.ShippingFee))
	fmt.Fprintf(&b, "*Total:* %s", fmtr.Format(totals.GrandTotal))

	return b.String()
}

// componentEscaper undoes the QueryEscape encodings that encodeURIComponent
// does not apply: space is %20 and !'()* stay literal.
var componentEscaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// HandOffURL builds https://<host>/<recipient>?text=<message> with the text
// escaped like encodeURIComponent
func HandOffURL(host, recipient, message string) string {
	text := componentEscaper.Replace(url.QueryEscape(message))
	return fmt.Sprintf("https://%s/%s?text=%s", host, url.PathEscape(recipient), text)
}
