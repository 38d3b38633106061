package cmd

import (
	"fmt"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/VoxDroid/opn/editor"
	"github.com/VoxDroid/opn/internal/cliconfig"
)

var openCmd = &cobra.Command{
	Use:   "open <file>",
	Short: "Open a file in the preferred editor",
	Long:  "Open a file in the preferred editor, optionally at a line and column. Example:\n  opn open main.go -l 42 -c 10",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		line, _ := cmd.Flags().GetInt("line")
		column, _ := cmd.Flags().GetInt("column")
		wait, _ := cmd.Flags().GetBool("wait")
		editorFlag, _ := cmd.Flags().GetString("editor")
		printOnly, _ := cmd.Flags().GetBool("print")

		b := editor.New().File(args[0]).Wait(wait)
		if line > 0 {
			b.Line(line)
		}
		if column > 0 {
			b.Column(column)
		}
		if editorFlag != "" {
			applyEditorFlag(b, editorFlag)
		}

		configs, err := cliconfig.Load()
		if err != nil {
			return err
		}
		for _, cfg := range configs {
			b.WithConfig(cfg)
		}

		if printOnly {
			ed, err := b.Detect()
			if err != nil {
				return err
			}
			argv := append([]string{ed.Binary}, ed.Args...)
			argv = append(argv, editor.FormatArgs(ed.Kind, args[0], line, column, wait)...)
			fmt.Println(shellquote.Join(argv...))
			return nil
		}

		return b.OpenContext(cmd.Context())
	},
}

// applyEditorFlag interprets --editor as a kind name when it matches the
// catalog, and as a raw binary name otherwise.
func applyEditorFlag(b *editor.Builder, value string) {
	if kind, ok := editor.KindFromName(value); ok {
		b.Editor(kind)
		return
	}
	b.EditorBinary(value)
}

func init() {
	openCmd.Flags().IntP("line", "l", 0, "Line to open at (1-indexed)")
	openCmd.Flags().IntP("column", "c", 0, "Column to open at (1-indexed, needs --line)")
	openCmd.Flags().BoolP("wait", "w", false, "Wait for the editor to close the file")
	openCmd.Flags().StringP("editor", "e", "", "Editor to use (kind name or binary)")
	openCmd.Flags().Bool("print", false, "Print the command instead of running it")
	rootCmd.AddCommand(openCmd)
}
