package sqlgen

import (
	"fmt"
	"strings"
	"unicode"
)

// CleanIdentifier strips invisible Unicode formatting characters (byte-order
// markers, zero-width marks) and surrounding whitespace from a column or
// table name. CSV exports from spreadsheet tools routinely carry a U+FEFF on
// the first header cell.
func CleanIdentifier(name string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Cf, r) {
			return -1
		}
		return r
	}, name)
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return "", fmt.Errorf("%w: %q", ErrEmptyIdentifier, name)
	}
	return cleaned, nil
}

// CleanColumns cleans every column name, preserving order.
func CleanColumns(columns []string) ([]string, error) {
	cleaned := make([]string, len(columns))
	for i, col := range columns {
		c, err := CleanIdentifier(col)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i+1, err)
		}
		cleaned[i] = c
	}
	return cleaned, nil
}
