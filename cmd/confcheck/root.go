package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "confcheck",
	Short: "Parse and validate sysctl.conf-style files",
	Long:  `confcheck parses sysctl.conf-style files into nested trees and validates them against key = type schema files.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
