package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Symbol prefixed to every formatted amount. Display only: the engine
// works in raw numeric currency units.
const Symbol = "₹"

// Format renders d as "₹1,23,456.78": fixed two decimals with Indian
// digit grouping (last three digits, then groups of two).
func Format(d decimal.Decimal) string {
	s := d.Round(2).StringFixed(2)

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")
	grouped := groupIndian(intPart)

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(Symbol)
	b.WriteString(grouped)
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	return strings.Join(groups, ",") + "," + tail
}
