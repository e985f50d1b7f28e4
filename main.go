// ABOUTME: Entry point for the smartsales console
// ABOUTME: Command-line and TUI client for the SmartSales365 backend

package main

import (
	"fmt"
	"os"

	"github.com/smartsales365/console/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
