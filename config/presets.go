package config

import (
	"fmt"
	"sort"
)

// presets are partial configurations applied on top of the defaults and
// below any config file, environment, or flag settings.
var presets = map[string]map[string]interface{}{
	"quick": {
		"verbose":              false,
		"batch_size":           1000,
		"include_create_table": false,
		"max_rows_per_file":    5000,
	},
	"detailed": {
		"verbose":              true,
		"batch_size":           50,
		"include_create_table": true,
		"max_rows_per_file":    1000,
	},
	"minimal": {
		"verbose":              false,
		"batch_size":           5000,
		"include_create_table": false,
		"max_rows_per_file":    50000,
	},
}

// Preset returns the settings for the named preset.
func Preset(name string) (map[string]interface{}, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownPreset, name, PresetNames())
	}
	return p, nil
}

// PresetNames returns the known preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
