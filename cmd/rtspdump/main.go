// Package main is the entry point for rtspdump.
package main

import (
	"fmt"
	"os"

	"github.com/indigo-web/rtsp/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
