package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// docsCmd writes a Markdown page per command. Hidden, it's for maintainers.
var docsCmd = &cobra.Command{
	Use:    "docs",
	Short:  "Generate Markdown documentation for every command",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create docs dir %s: %w", dir, err)
		}

		rootCmd.DisableAutoGenTag = true
		if err := doc.GenMarkdownTree(rootCmd, dir); err != nil {
			return fmt.Errorf("failed to generate docs: %w", err)
		}
		return nil
	},
}

// set flags
func init() {
	docsCmd.Flags().String("dir", "docs", "directory to write the Markdown files to")

	rootCmd.AddCommand(docsCmd)
}
