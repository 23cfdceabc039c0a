package readers

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/Greg89/PythonGenerateSQL/readers/common"
)

// Options carries per-read settings shared by all drivers.
type Options struct {
	// Delimiter overrides field-delimiter detection for CSV input.
	// Zero means detect from the first line.
	Delimiter rune

	// AutoDetectEncoding enables BOM stripping and UTF-16 decoding.
	AutoDetectEncoding bool
}

// Driver is implemented by each format package. Read consumes the whole
// source and returns a normalized table: every row has exactly one cell per
// column, in column order.
type Driver interface {
	Read(r io.Reader, opts Options) (*common.Table, error)
}

var (
	driversMu sync.RWMutex
	drivers   = make(map[string]Driver)
)

// Register makes a reader driver available by the provided name.
// If Register is called twice with the same name or if driver is nil, it panics.
func Register(name string, driver Driver) {
	driversMu.Lock()
	defer driversMu.Unlock()
	if driver == nil {
		panic("readers: Register driver is nil")
	}
	if _, dup := drivers[name]; dup {
		panic("readers: Register called twice for driver " + name)
	}
	drivers[name] = driver
}

// Open reads source with the named driver.
func Open(driverName string, source io.Reader, opts Options) (*common.Table, error) {
	driversMu.RLock()
	driver, ok := drivers[driverName]
	driversMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("readers: unknown driver %q (forgotten import?)", driverName)
	}
	return driver.Read(source, opts)
}

// Drivers returns a sorted list of the names of the registered drivers.
func Drivers() []string {
	driversMu.RLock()
	defer driversMu.RUnlock()
	list := make([]string, 0, len(drivers))
	for name := range drivers {
		list = append(list, name)
	}
	sort.Strings(list)
	return list
}

// DriverFor maps a file path to the driver responsible for its extension.
func DriverFor(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return "csv", nil
	case ".txt":
		return "txt", nil
	case ".xml":
		return "xml", nil
	case ".json":
		return "json", nil
	case ".xlsx", ".xls":
		return "excel", nil
	case ".html", ".htm":
		return "html", nil
	}
	return "", fmt.Errorf("%w: %s", common.ErrUnsupportedFormat, ext)
}
