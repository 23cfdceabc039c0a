package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/pflag"

	"github.com/Greg89/PythonGenerateSQL/config"
	"github.com/Greg89/PythonGenerateSQL/sqlgen"
)

// promptOverrides asks for the common settings before generating. An empty
// answer keeps the current value; settings pinned by explicit flags are not
// asked for, so flags stay above interactive answers.
func promptOverrides(cfg *config.Config, flags *pflag.FlagSet) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize prompt: %w", err)
	}
	defer func() { _ = rl.Close() }()

	if !flags.Changed("table") {
		answer, err := ask(rl, fmt.Sprintf("Table name [%s]: ", cfg.DefaultTableName))
		if err != nil {
			return err
		}
		if answer != "" {
			cfg.DefaultTableName = answer
		}
	}

	if !flags.Changed("dialect") {
		answer, err := ask(rl, fmt.Sprintf("SQL dialect (%s) [%s]: ",
			strings.Join(sqlgen.DialectNames(), "|"), cfg.SQLDialect))
		if err != nil {
			return err
		}
		if answer != "" {
			if _, derr := sqlgen.ParseDialect(answer); derr == nil {
				cfg.SQLDialect = answer
			}
		}
	}

	if !flags.Changed("batch") {
		answer, err := ask(rl, fmt.Sprintf("Batch size [%d]: ", cfg.BatchSize))
		if err != nil {
			return err
		}
		if answer != "" {
			if n, perr := strconv.Atoi(answer); perr == nil && n > 0 {
				cfg.BatchSize = n
			}
		}
	}

	if !flags.Changed("verbose") {
		answer, err := ask(rl, fmt.Sprintf("Verbose output (y/n) [%s]: ", yesNo(cfg.Verbose)))
		if err != nil {
			return err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			cfg.Verbose = true
		case "n", "no":
			cfg.Verbose = false
		}
	}

	return cfg.Validate()
}

func ask(rl *readline.Instance, prompt string) (string, error) {
	rl.SetPrompt(prompt)
	line, err := rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", fmt.Errorf("interrupted")
	}
	if err != nil {
		// EOF keeps the remaining defaults
		return "", nil
	}
	return strings.TrimSpace(line), nil
}

func yesNo(v bool) string {
	if v {
		return "y"
	}
	return "n"
}
