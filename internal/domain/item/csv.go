package item

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// CSVRow is one parsed import row. Err is set when the row is
// malformed; bulk import reports it and moves on.
type CSVRow struct {
	Line int
	Name string
	Unit string
	Rate decimal.Decimal
	Tags []string
	Err  string
}

// ParseCSV reads an item import file. The format is tolerant: comma
// or tab delimited (detected from the header line), quoted fields
// with doubled internal quotes, CRLF or LF endings, and a required
// "name,unit,rate,tags" header row. Tags inside a cell split on ";"
// or ",".
func ParseCSV(r io.Reader) ([]CSVRow, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = detectDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv is empty")
	}

	// Skip the header row; tolerate files without one when the first
	// row does not look like a header.
	start := 0
	if strings.EqualFold(strings.TrimSpace(records[0][0]), "name") {
		start = 1
	}

	var rows []CSVRow
	for i := start; i < len(records); i++ {
		record := records[i]
		row := CSVRow{Line: i + 1}

		if isBlankRecord(record) {
			continue
		}
		if len(record) < 3 {
			row.Err = "expected at least name, unit and rate columns"
			rows = append(rows, row)
			continue
		}

		row.Name = strings.TrimSpace(record[0])
		if row.Name == "" {
			row.Err = "name is required"
			rows = append(rows, row)
			continue
		}

		row.Unit = NormalizeUnit(record[1])

		rate, err := decimal.NewFromString(strings.TrimSpace(record[2]))
		if err != nil || rate.IsNegative() {
			row.Err = "rate must be a non-negative number"
			rows = append(rows, row)
			continue
		}
		row.Rate = rate

		if len(record) > 3 {
			row.Tags = SplitTags(record[3])
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// detectDelimiter picks tab when the first line contains one,
// otherwise comma.
func detectDelimiter(data []byte) rune {
	line := data
	if idx := bytes.IndexByte(data, '\n'); idx >= 0 {
		line = data[:idx]
	}
	if bytes.ContainsRune(line, '\t') {
		return '\t'
	}
	return ','
}

func isBlankRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

// NormalizeUnit maps free-text unit tokens onto the three supported
// units. Unrecognized tokens default to "piece" rather than failing
// the row; imports stay lenient.
func NormalizeUnit(raw string) string {
	unit := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.HasPrefix(unit, "kg"):
		return "kg"
	case strings.HasPrefix(unit, "meter"), unit == "m":
		return "meter"
	default:
		return "piece"
	}
}

// SplitTags splits a tag cell on ";" or ",", trimming blanks.
func SplitTags(cell string) []string {
	cell = strings.ReplaceAll(cell, ";", ",")
	var tags []string
	for _, tag := range strings.Split(cell, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// WriteCSV exports items in the same shape the importer accepts, so
// an export/import round trip is lossless. Fields containing commas
// or quotes are re-quoted by the writer.
func WriteCSV(w io.Writer, items []Item) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"name", "unit", "rate", "tags"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, it := range items {
		record := []string{it.Name, it.Unit, it.Rate.String(), strings.Join(it.Tags, ";")}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
