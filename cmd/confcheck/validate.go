package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sysctlconf/conf"
	"sysctlconf/schema"
)

var schemaPath string

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a config file against a schema",
	Long:  `Parses the config and the schema, then checks that every configured key is declared and every value parses as its declared type. Stops at the first violation.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(args[0]); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Config is valid")
	},
}

func init() {
	validateCmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "Path to the schema file")
	_ = validateCmd.MarkFlagRequired("schema")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(configPath string) error {
	root, err := conf.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	s, err := schema.Load(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}

	return schema.Validate(root, s)
}
