// Package main is the entry point for the catalog maintenance CLI.
package main

import (
	"os"

	"github.com/nightcap/backend/cmd/catalog/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
