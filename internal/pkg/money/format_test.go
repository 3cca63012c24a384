package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	f := NewFormatter("₦")

	tests := []struct {
		amount int64
		want   string
	}{
		{0, "₦0.00"},
		{2500, "₦2,500.00"},
		{12500, "₦12,500.00"},
		{15000, "₦15,000.00"},
		{999, "₦999.00"},
		{1250000, "₦1,250,000.00"},
		{-2500, "-₦2,500.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, f.Format(tt.amount))
	}
}

func TestFormat_OtherSymbol(t *testing.T) {
	f := NewFormatter("$")
	assert.Equal(t, "$3,500.00", f.Format(3500))
	assert.Equal(t, "$", f.Symbol())
}
