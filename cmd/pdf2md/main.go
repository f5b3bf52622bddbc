package main

import (
	"fmt"
	"os"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if isUsageError(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
