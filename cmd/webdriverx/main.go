package main

import (
	"fmt"
	"os"

	"github.com/csf-dev/webdriverext/internal/config"
)

func main() {
	rootCmd := newRootCmd(config.LoadOrDefault())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
