package cli

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Greg89/PythonGenerateSQL/config"
	"github.com/Greg89/PythonGenerateSQL/fileman"
	"github.com/Greg89/PythonGenerateSQL/readers"
	_ "github.com/Greg89/PythonGenerateSQL/readers/all"
	"github.com/Greg89/PythonGenerateSQL/sqlgen"
)

// newLogger returns a structured logger for diagnostics on stderr. At the
// default verbosity only warnings and errors appear.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// run converts a single data file to SQL.
func run(cmd *cobra.Command, cfg *config.Config, inputArg, outputArg string) error {
	log := newLogger(cfg.Verbose)
	fm := fileman.New(cfg.InputDirectory, cfg.OutputDirectory)

	inputPath, err := fm.ResolveInputPath(inputArg)
	if err != nil {
		return err
	}
	driverName, err := readers.DriverFor(inputPath)
	if err != nil {
		return err
	}
	log.Debug("reading input", "file", inputPath, "driver", driverName)

	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	tbl, err := readers.Open(driverName, f, readers.Options{
		AutoDetectEncoding: cfg.AutoDetectEncoding,
	})
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inputPath, err)
	}
	log.Debug("parsed table", "columns", len(tbl.Columns), "rows", len(tbl.Rows))

	columns, err := sqlgen.CleanColumns(tbl.Columns)
	if err != nil {
		return err
	}
	tbl.Columns = columns
	target, err := sqlgen.ParseTarget(cfg.DefaultTableName)
	if err != nil {
		return err
	}
	dialect, err := sqlgen.ParseDialect(cfg.SQLDialect)
	if err != nil {
		return err
	}

	gen := sqlgen.New(sqlgen.Options{
		Dialect:            dialect,
		BatchSize:          cfg.BatchSize,
		NullValues:         cfg.NullValues,
		IncludeCreateTable: cfg.IncludeCreateTable,
		Verbose:            cfg.Verbose,
	})

	var buf bytes.Buffer
	if err := gen.Generate(&buf, target, tbl); err != nil {
		return fmt.Errorf("failed to generate SQL: %w", err)
	}

	outputPath := fm.OutputPath(inputPath, outputArg)
	if err := fileman.WriteAtomic(outputPath, buf.Bytes()); err != nil {
		return err
	}

	log.Debug("wrote output", "file", outputPath, "bytes", buf.Len())
	fmt.Fprintf(cmd.OutOrStdout(), "Generated %s (%d rows) from %s\n",
		outputPath, len(tbl.Rows), inputPath)
	return nil
}

// listInputFiles renders the supported data files found in the input
// directory.
func listInputFiles(cmd *cobra.Command, cfg *config.Config) error {
	fm := fileman.New(cfg.InputDirectory, cfg.OutputDirectory)
	files, err := fm.ListDataFiles()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no data files found in %s; pass a file path or add files there", cfg.InputDirectory)
	}

	renderFileList(cmd.OutOrStdout(), cfg.InputDirectory, files)
	fmt.Fprintln(cmd.OutOrStdout(), "Run again with a file name to generate SQL.")
	return nil
}

func renderFileList(w io.Writer, dir string, files []string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "File", "Format"})
	for i, name := range files {
		driver, err := readers.DriverFor(name)
		if err != nil {
			driver = "?"
		}
		t.AppendRow(table.Row{i + 1, name, driver})
	}
	t.Render()
	fmt.Fprintf(w, "(%d files in %s)\n", len(files), dir)
}
