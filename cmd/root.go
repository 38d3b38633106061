package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "opn",
	Short: "opn opens files in the user's preferred editor",
	Long:  "opn resolves the user's preferred text editor and opens files in it, optionally at a specific line and column",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("opn: run 'opn --help' to see available commands")
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
