// Package cli provides the command-line interface for sqlgen.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Greg89/PythonGenerateSQL/config"
)

// Version information (set at build time).
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command. Flag state lives in the
// closure, so command instances never share values.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile         string
		presetFlag      string
		outputFlag      string
		createConfig    bool
		sampleFormat    string
		interactiveFlag bool
	)

	rootCmd := &cobra.Command{
		Use:   "sqlgen [file]",
		Short: "Generate SQL INSERT statements from tabular data files",
		Long: `sqlgen converts CSV, TXT, XML, JSON, Excel and HTML files into SQL INSERT
statements, optionally preceded by a CREATE TABLE statement for temporary
tables.

With no file argument it lists the data files found in the input directory.
Files are looked up in the input directory when the given path does not
exist, and output lands in the output directory as <file>.sql unless -o
says otherwise.`,
		Version: Version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if createConfig {
				return writeSampleConfig(cmd, sampleFormat)
			}

			cfg, err := config.Load(cfgFile, presetFlag, cmd.Flags())
			if err != nil {
				return err
			}
			if interactiveFlag {
				if err := promptOverrides(cfg, cmd.Flags()); err != nil {
					return err
				}
			}

			if len(args) == 0 {
				return listInputFiles(cmd, cfg)
			}
			return run(cmd, cfg, args[0], outputFlag)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}} (commit ` + GitCommit + `)
`)

	rootCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ./config.json)")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "output file (default: <output dir>/<file>.sql)")
	rootCmd.Flags().StringP("table", "t", "", "target table name (prefix # for a temporary table)")
	rootCmd.Flags().String("dialect", "", "SQL dialect (sqlserver|mysql|postgresql)")
	rootCmd.Flags().Int("batch", 0, "rows per progress batch")
	rootCmd.Flags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.Flags().StringVar(&presetFlag, "preset", "", "configuration preset (quick|detailed|minimal)")
	rootCmd.Flags().BoolVar(&interactiveFlag, "interactive", false, "prompt for settings before generating")
	rootCmd.Flags().BoolVar(&createConfig, "create-config", false, "write a sample config file and exit")
	rootCmd.Flags().StringVar(&sampleFormat, "format", "json", "sample config format (json|hcl)")

	return rootCmd
}

// writeSampleConfig creates a sample configuration file in the requested
// format.
func writeSampleConfig(cmd *cobra.Command, format string) error {
	switch format {
	case "json":
		if err := config.WriteSampleJSON(config.SampleJSONFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Sample configuration written to %s\n", config.SampleJSONFile)
	case "hcl":
		if err := config.WriteSampleHCL(config.SampleHCLFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Sample configuration written to %s\n", config.SampleHCLFile)
	default:
		return fmt.Errorf("unsupported config format %q (json|hcl)", format)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
