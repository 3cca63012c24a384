// internal/pkg/money/format.go
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders whole-unit amounts as currency strings with grouped
// thousands and exactly two decimals, e.g. ₦12,500.00
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// NewFormatter creates a formatter for the given currency symbol
func NewFormatter(symbol string) *Formatter {
	return &Formatter{
		symbol:  symbol,
		printer: message.NewPrinter(language.English),
	}
}

// Format formats an amount expressed in whole currency units
func (f *Formatter) Format(amount int64) string {
	if amount < 0 {
		return "-" + f.symbol + f.printer.Sprintf("%.2f", float64(-amount))
	}
	return f.symbol + f.printer.Sprintf("%.2f", float64(amount))
}

// Symbol returns the configured currency symbol
func (f *Formatter) Symbol() string {
	return f.symbol
}
