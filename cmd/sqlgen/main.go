package main

import (
	"os"

	"github.com/Greg89/PythonGenerateSQL/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
