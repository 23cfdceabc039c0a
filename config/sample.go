package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// SampleJSONFile is the file name WriteSampleJSON creates.
const SampleJSONFile = "config_sample.json"

// SampleHCLFile is the file name WriteSampleHCL creates.
const SampleHCLFile = "config_sample.hcl"

// WriteSampleJSON writes the default configuration as a JSON config file
// the user can edit and pass back with -c.
func WriteSampleJSON(path string) error {
	data, err := json.MarshalIndent(Default(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode sample config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// WriteSampleHCL writes the default configuration in HCL format.
func WriteSampleHCL(path string) error {
	d := Default()

	f := hclwrite.NewEmptyFile()
	root := f.Body()
	root.SetAttributeValue("input_directory", cty.StringVal(d.InputDirectory))
	root.SetAttributeValue("output_directory", cty.StringVal(d.OutputDirectory))
	root.SetAttributeValue("default_table_name", cty.StringVal(d.DefaultTableName))
	root.SetAttributeValue("auto_detect_encoding", cty.BoolVal(d.AutoDetectEncoding))
	root.SetAttributeValue("batch_size", cty.NumberIntVal(int64(d.BatchSize)))
	root.SetAttributeValue("include_create_table", cty.BoolVal(d.IncludeCreateTable))
	root.SetAttributeValue("sql_dialect", cty.StringVal(d.SQLDialect))
	root.SetAttributeValue("date_format", cty.StringVal(d.DateFormat))

	nulls := make([]cty.Value, len(d.NullValues))
	for i, v := range d.NullValues {
		nulls[i] = cty.StringVal(v)
	}
	root.SetAttributeValue("null_values", cty.ListVal(nulls))
	root.SetAttributeValue("max_rows_per_file", cty.NumberIntVal(int64(d.MaxRowsPerFile)))
	root.SetAttributeValue("verbose", cty.BoolVal(d.Verbose))

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(f.Bytes()); err != nil {
		return fmt.Errorf("failed to write config to file: %w", err)
	}
	return nil
}
