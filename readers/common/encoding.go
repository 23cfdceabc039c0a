package common

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeReader wraps r so the parsers downstream always see plain UTF-8.
// When autoDetect is on, a UTF-8 byte-order marker is stripped and UTF-16
// input carrying a BOM is transparently decoded. When it is off the reader
// is returned unchanged and any BOM surfaces as a literal U+FEFF rune, which
// identifier cleaning removes from column names later.
func DecodeReader(r io.Reader, autoDetect bool) io.Reader {
	if !autoDetect {
		return r
	}
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}
