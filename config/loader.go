package config

import (
	"fmt"
	"os"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// DefaultConfigFile is the config file name searched for in the working
// directory when -c is not given.
const DefaultConfigFile = "config.json"

// flagKeys maps command-line flag names to config keys. Flags not listed
// here do not feed the resolved configuration.
var flagKeys = map[string]string{
	"table":   "default_table_name",
	"dialect": "sql_dialect",
	"batch":   "batch_size",
	"verbose": "verbose",
}

// findConfigFile returns the config file to use.
// Priority: explicit path > config.json in the working directory.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}
	return ""
}

// Load resolves the configuration.
// Precedence (highest to lowest): flags > env vars > config file > preset > defaults.
// Interactive answers are applied by the caller after Load, above env but
// below explicitly set flags.
func Load(cfgFile, preset string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Built-in defaults.
	if err := k.Load(confmap.Provider(defaultMap(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Named preset.
	if preset != "" {
		settings, err := Preset(preset)
		if err != nil {
			return nil, err
		}
		if err := k.Load(confmap.Provider(settings, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load preset %q: %w", preset, err)
		}
	}

	// 3. Config file, JSON by default, HCL when the name says so.
	if path := findConfigFile(cfgFile); path != "" {
		if strings.HasSuffix(path, ".hcl") {
			settings, err := loadHCLFile(path)
			if err != nil {
				return nil, err
			}
			if err := k.Load(confmap.Provider(settings, "."), nil); err != nil {
				return nil, fmt.Errorf("error loading config file %s: %w", path, err)
			}
		} else {
			if err := k.Load(file.Provider(path), kjson.Parser()); err != nil {
				return nil, fmt.Errorf("error reading config file %s: %w", path, err)
			}
		}
	}

	// 4. Environment variables: SQLGEN_BATCH_SIZE -> batch_size.
	if err := k.Load(env.Provider("SQLGEN_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "SQLGEN_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 5. Flags, highest priority.
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set
			if !f.Changed {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
