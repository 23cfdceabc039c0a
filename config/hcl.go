package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// hclConfig mirrors Config with pointer fields so that attributes absent
// from the file stay unset instead of overriding lower layers with zeroes.
type hclConfig struct {
	InputDirectory     *string  `hcl:"input_directory,optional"`
	OutputDirectory    *string  `hcl:"output_directory,optional"`
	DefaultTableName   *string  `hcl:"default_table_name,optional"`
	AutoDetectEncoding *bool    `hcl:"auto_detect_encoding,optional"`
	BatchSize          *int     `hcl:"batch_size,optional"`
	IncludeCreateTable *bool    `hcl:"include_create_table,optional"`
	SQLDialect         *string  `hcl:"sql_dialect,optional"`
	DateFormat         *string  `hcl:"date_format,optional"`
	NullValues         []string `hcl:"null_values,optional"`
	MaxRowsPerFile     *int     `hcl:"max_rows_per_file,optional"`
	Verbose            *bool    `hcl:"verbose,optional"`
}

// loadHCLFile reads an HCL config file into a settings map containing only
// the attributes the file actually sets.
func loadHCLFile(path string) (map[string]interface{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(content, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", diags.Error())
	}

	var hc hclConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &hc); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", diags.Error())
	}

	settings := make(map[string]interface{})
	if hc.InputDirectory != nil {
		settings["input_directory"] = *hc.InputDirectory
	}
	if hc.OutputDirectory != nil {
		settings["output_directory"] = *hc.OutputDirectory
	}
	if hc.DefaultTableName != nil {
		settings["default_table_name"] = *hc.DefaultTableName
	}
	if hc.AutoDetectEncoding != nil {
		settings["auto_detect_encoding"] = *hc.AutoDetectEncoding
	}
	if hc.BatchSize != nil {
		settings["batch_size"] = *hc.BatchSize
	}
	if hc.IncludeCreateTable != nil {
		settings["include_create_table"] = *hc.IncludeCreateTable
	}
	if hc.SQLDialect != nil {
		settings["sql_dialect"] = *hc.SQLDialect
	}
	if hc.DateFormat != nil {
		settings["date_format"] = *hc.DateFormat
	}
	if hc.NullValues != nil {
		settings["null_values"] = hc.NullValues
	}
	if hc.MaxRowsPerFile != nil {
		settings["max_rows_per_file"] = *hc.MaxRowsPerFile
	}
	if hc.Verbose != nil {
		settings["verbose"] = *hc.Verbose
	}
	return settings, nil
}
