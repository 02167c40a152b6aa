package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Cotton Roll", "cotton-roll"},
		{"  cotton   roll ", "cotton-roll"},
		{"Steel Rod (6mm)", "steel-rod-6mm"},
		{"100% Wool", "100-wool"},
		{"---", ""},
		{"", ""},
	}
	for _, c := range cases {
		got := Slugify(c.input)
		if got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestMakeItemID(t *testing.T) {
	assert.Equal(t, "cotton-roll-kg", MakeItemID("Cotton Roll", "kg"))

	// same name+unit always lands on the same id, whatever the casing
	// or spacing, so imports are idempotent
	assert.Equal(t, MakeItemID("Cotton Roll", "kg"), MakeItemID("  COTTON   roll ", " KG "))

	// different unit means a different item
	assert.NotEqual(t, MakeItemID("Cotton Roll", "kg"), MakeItemID("Cotton Roll", "piece"))
}
