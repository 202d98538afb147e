// Package main is the entry point for the txledger-report CLI.
package main

import (
	"os"

	"txledger/cmd/txledger-report/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
