package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"sysctlconf/conf"
)

var parseDebug bool

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a config file and print the tree as YAML",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runParse(args[0]); err != nil {
			fmt.Printf("Parse failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	parseCmd.Flags().BoolVar(&parseDebug, "debug", false, "Dump the raw tree instead of YAML")
	rootCmd.AddCommand(parseCmd)
}

func runParse(path string) error {
	root, err := conf.Load(path)
	if err != nil {
		return err
	}

	if parseDebug {
		spew.Dump(root)
		return nil
	}

	data, err := yaml.Marshal(root.ToMap())
	if err != nil {
		return fmt.Errorf("failed to marshal tree: %w", err)
	}

	fmt.Print(string(data))

	return nil
}
