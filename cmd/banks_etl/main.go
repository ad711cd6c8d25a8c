// Package main is the entry point for the banks-etl binary.
package main

import (
	"os"

	"github.com/SscSPs/banks_etl/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
