package currency

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"0", "₹0.00"},
		{"5", "₹5.00"},
		{"123", "₹123.00"},
		{"1234", "₹1,234.00"},
		{"12345", "₹12,345.00"},
		{"123456", "₹1,23,456.00"},
		{"1234567", "₹12,34,567.00"},
		{"12345678", "₹1,23,45,678.00"},
		{"123456.78", "₹1,23,456.78"},
		{"9999999.999", "₹1,00,00,000.00"},
		{"-123456.78", "-₹1,23,456.78"},
	}
	for _, c := range cases {
		got := Format(decimal.RequireFromString(c.input))
		if got != c.want {
			t.Errorf("Format(%s) = %q, want %q", c.input, got, c.want)
		}
	}
}
