package cmd

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/VoxDroid/opn/editor"
)

var editorsCmd = &cobra.Command{
	Use:   "editors",
	Short: "List known editors and whether they are installed",
	RunE: func(cmd *cobra.Command, _ []string) error {
		installedOnly, _ := cmd.Flags().GetBool("installed")

		title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0ea5a4"))
		present := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22c55e"))
		dim := lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))

		fmt.Println(title.Render(fmt.Sprintf("%-18s %-14s %-10s %s", "EDITOR", "BINARY", "CAPS", "INSTALLED")))
		for _, k := range editor.Kinds() {
			_, err := exec.LookPath(k.DefaultBinary())
			installed := err == nil
			if installedOnly && !installed {
				continue
			}

			row := fmt.Sprintf("%-18s %-14s %-10s ", k.Name(), k.DefaultBinary(), capabilities(k))
			if installed {
				fmt.Println(row + present.Render("yes"))
			} else {
				fmt.Println(dim.Render(row + "no"))
			}
		}
		return nil
	},
}

// capabilities summarizes a kind as a short flag string: c = column,
// w = wait, t = terminal.
func capabilities(k editor.Kind) string {
	var caps []string
	if k.SupportsColumn() {
		caps = append(caps, "c")
	}
	if k.SupportsWait() {
		caps = append(caps, "w")
	}
	if k.IsTerminal() {
		caps = append(caps, "t")
	}
	if len(caps) == 0 {
		return "-"
	}
	return strings.Join(caps, "")
}

func init() {
	editorsCmd.Flags().Bool("installed", false, "Only show installed editors")
	rootCmd.AddCommand(editorsCmd)
}
