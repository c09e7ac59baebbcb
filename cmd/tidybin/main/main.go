package main

import (
	"os"

	"github.com/tidybin/tidybin/cmd/tidybin"
)

func main() {
	rootCmd := tidybin.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrf("Error: %v\n", err)
		os.Exit(1)
	}
}
