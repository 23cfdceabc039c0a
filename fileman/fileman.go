// Package fileman implements the input/output directory conventions and
// atomic output writing.
package fileman

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// supportedExts are the data file extensions the readers can open.
var supportedExts = map[string]bool{
	".csv":  true,
	".txt":  true,
	".xml":  true,
	".json": true,
	".xlsx": true,
	".xls":  true,
	".html": true,
	".htm":  true,
}

// Manager resolves data files against the configured input directory and
// places generated SQL under the output directory.
type Manager struct {
	InputDir  string
	OutputDir string
}

// New returns a Manager for the given directories.
func New(inputDir, outputDir string) *Manager {
	return &Manager{InputDir: inputDir, OutputDir: outputDir}
}

// IsSupportedDataFile reports whether the file name has a readable extension.
func IsSupportedDataFile(name string) bool {
	return supportedExts[strings.ToLower(filepath.Ext(name))]
}

// ListDataFiles returns the supported data files in the input directory,
// sorted by name. A missing input directory yields an empty list.
func (m *Manager) ListDataFiles() ([]string, error) {
	entries, err := os.ReadDir(m.InputDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory %s: %w", m.InputDir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if IsSupportedDataFile(entry.Name()) {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// ResolveInputPath returns the path to open for the given argument. A path
// that exists as given wins; otherwise the file is looked up in the input
// directory.
func (m *Manager) ResolveInputPath(name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}
	candidate := filepath.Join(m.InputDir, name)
	if _, err := os.Stat(candidate); err == nil {
		return candidate, nil
	}
	return "", fmt.Errorf("input file not found: %s (also tried %s)", name, candidate)
}

// OutputPath returns the destination for generated SQL. An explicit path is
// used as-is; otherwise the input file's stem goes under the output
// directory with a .sql extension.
func (m *Manager) OutputPath(inputPath, explicit string) string {
	if explicit != "" {
		return explicit
	}
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(m.OutputDir, stem+".sql")
}

// WriteAtomic writes data to path through a temporary file in the same
// directory, so a failed run never leaves a truncated output file behind.
func WriteAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close output: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	return nil
}
