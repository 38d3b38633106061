package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/opn/editor"
	"github.com/VoxDroid/opn/internal/picker"
)

var pickCmd = &cobra.Command{
	Use:   "pick <file>",
	Short: "Pick an installed editor interactively, then open the file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		line, _ := cmd.Flags().GetInt("line")
		column, _ := cmd.Flags().GetInt("column")
		wait, _ := cmd.Flags().GetBool("wait")

		choices := picker.Installed()
		if len(choices) == 0 {
			return editor.ErrNoEditorFound
		}

		choice, picked, err := picker.Run(fmt.Sprintf("Open %s with:", args[0]), choices)
		if err != nil {
			return err
		}
		if !picked {
			fmt.Println("aborted")
			return nil
		}

		b := editor.New().File(args[0]).Editor(choice.Kind).Wait(wait)
		if line > 0 {
			b.Line(line)
		}
		if column > 0 {
			b.Column(column)
		}
		return b.OpenContext(cmd.Context())
	},
}

func init() {
	pickCmd.Flags().IntP("line", "l", 0, "Line to open at (1-indexed)")
	pickCmd.Flags().IntP("column", "c", 0, "Column to open at (1-indexed, needs --line)")
	pickCmd.Flags().BoolP("wait", "w", false, "Wait for the editor to close the file")
	rootCmd.AddCommand(pickCmd)
}
