package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/sheetkit/sheetkit/internal/cli"
	"github.com/sheetkit/sheetkit/internal/config"
)

var version = "dev"

func main() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}

	if err := cli.Execute(version); err != nil {
		color.Red("✗ %v", err)
		os.Exit(1)
	}
}
