// ABOUTME: Entry point for the rentadesk CLI
// ABOUTME: Terminal client for the multi-tenant car rental platform

package main

import (
	"fmt"
	"os"

	"rentadesk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
