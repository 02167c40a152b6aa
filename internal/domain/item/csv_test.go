package item

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	input := strings.Join([]string{
		"name,unit,rate,tags",
		"Cotton Roll,kg,120.50,fabric;raw",
		"Steel Rod,meter,80,",
		"",
		"Button,pcs,2.25,accessories",
	}, "\n")

	rows, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Cotton Roll", rows[0].Name)
	assert.Equal(t, "kg", rows[0].Unit)
	assert.True(t, rows[0].Rate.Equal(decimal.RequireFromString("120.50")))
	assert.Equal(t, []string{"fabric", "raw"}, rows[0].Tags)

	assert.Equal(t, "meter", rows[1].Unit)
	assert.Empty(t, rows[1].Tags)

	// unknown unit tokens default to piece
	assert.Equal(t, "piece", rows[2].Unit)
}

func TestParseCSVTabDelimited(t *testing.T) {
	input := "name\tunit\trate\ttags\nCotton Roll\tkg\t120\tfabric\n"

	rows, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Cotton Roll", rows[0].Name)
	assert.Equal(t, "kg", rows[0].Unit)
}

func TestParseCSVWithoutHeader(t *testing.T) {
	rows, err := ParseCSV(strings.NewReader("Cotton Roll,kg,120,\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Cotton Roll", rows[0].Name)
}

func TestParseCSVRowErrors(t *testing.T) {
	input := strings.Join([]string{
		"name,unit,rate,tags",
		",kg,120,",            // missing name
		"Cotton Roll,kg,abc,", // bad rate
		"Cotton Roll,kg,-5,",  // negative rate
		"Good Row,kg,10,",
	}, "\n")

	rows, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.NotEmpty(t, rows[0].Err)
	assert.NotEmpty(t, rows[1].Err)
	assert.NotEmpty(t, rows[2].Err)
	assert.Empty(t, rows[3].Err)
	assert.Equal(t, "Good Row", rows[3].Name)
}

func TestNormalizeUnit(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"kg", "kg"},
		{"Kg", "kg"},
		{"kgs", "kg"},
		{"meter", "meter"},
		{"meters", "meter"},
		{"m", "meter"},
		{"piece", "piece"},
		{"pcs", "piece"},
		{"whatever", "piece"},
		{"", "piece"},
	}
	for _, c := range cases {
		got := NormalizeUnit(c.input)
		if got != c.want {
			t.Errorf("NormalizeUnit(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestCSVRoundTrip(t *testing.T) {
	items := []Item{
		{Name: "Cotton Roll", Unit: "kg", Rate: decimal.RequireFromString("120.5"), Tags: []string{"fabric", "raw"}},
		{Name: "Rod, steel", Unit: "meter", Rate: decimal.RequireFromString("80")},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, items))

	rows, err := ParseCSV(&buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Cotton Roll", rows[0].Name)
	assert.Equal(t, []string{"fabric", "raw"}, rows[0].Tags)
	// the quoted comma survives the round trip
	assert.Equal(t, "Rod, steel", rows[1].Name)
	assert.True(t, rows[1].Rate.Equal(decimal.RequireFromString("80")))
}
