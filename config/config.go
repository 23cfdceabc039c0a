// Package config resolves the tool configuration from defaults, a named
// preset, a config file (JSON or HCL), SQLGEN_ environment variables,
// interactive answers, and command-line flags, in ascending precedence.
package config

import (
	"fmt"

	"github.com/Greg89/PythonGenerateSQL/sqlgen"
)

// Config holds all resolved configuration options.
type Config struct {
	InputDirectory     string   `koanf:"input_directory" json:"input_directory"`
	OutputDirectory    string   `koanf:"output_directory" json:"output_directory"`
	DefaultTableName   string   `koanf:"default_table_name" json:"default_table_name"`
	AutoDetectEncoding bool     `koanf:"auto_detect_encoding" json:"auto_detect_encoding"`
	BatchSize          int      `koanf:"batch_size" json:"batch_size"`
	IncludeCreateTable bool     `koanf:"include_create_table" json:"include_create_table"`
	SQLDialect         string   `koanf:"sql_dialect" json:"sql_dialect"`
	DateFormat         string   `koanf:"date_format" json:"date_format"`
	NullValues         []string `koanf:"null_values" json:"null_values"`
	MaxRowsPerFile     int      `koanf:"max_rows_per_file" json:"max_rows_per_file"`
	Verbose            bool     `koanf:"verbose" json:"verbose"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		InputDirectory:     "input",
		OutputDirectory:    "output",
		DefaultTableName:   "table_name",
		AutoDetectEncoding: true,
		BatchSize:          100,
		IncludeCreateTable: false,
		SQLDialect:         "sqlserver",
		DateFormat:         "YYYY-MM-DD",
		NullValues:         append([]string(nil), sqlgen.DefaultNullValues...),
		MaxRowsPerFile:     10000,
		Verbose:            true,
	}
}

// defaultMap mirrors Default as a koanf confmap.
func defaultMap() map[string]interface{} {
	d := Default()
	return map[string]interface{}{
		"input_directory":      d.InputDirectory,
		"output_directory":     d.OutputDirectory,
		"default_table_name":   d.DefaultTableName,
		"auto_detect_encoding": d.AutoDetectEncoding,
		"batch_size":           d.BatchSize,
		"include_create_table": d.IncludeCreateTable,
		"sql_dialect":          d.SQLDialect,
		"date_format":          d.DateFormat,
		"null_values":          d.NullValues,
		"max_rows_per_file":    d.MaxRowsPerFile,
		"verbose":              d.Verbose,
	}
}

// Validate checks the resolved configuration for values the generator
// cannot work with.
func (c *Config) Validate() error {
	if _, err := sqlgen.ParseDialect(c.SQLDialect); err != nil {
		return err
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("%w: batch_size must be positive, got %d", ErrInvalidValue, c.BatchSize)
	}
	if c.MaxRowsPerFile <= 0 {
		return fmt.Errorf("%w: max_rows_per_file must be positive, got %d", ErrInvalidValue, c.MaxRowsPerFile)
	}
	return nil
}
