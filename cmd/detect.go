package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/opn/editor"
	"github.com/VoxDroid/opn/internal/cliconfig"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show which editor would be used, without opening anything",
	Long:  "Show which editor would be used, without opening anything. Example:\n  opn detect --order config,visual,editor,path",
	RunE: func(cmd *cobra.Command, _ []string) error {
		orderFlag, _ := cmd.Flags().GetString("order")

		configs, err := cliconfig.Load()
		if err != nil {
			return err
		}

		var ed editor.Resolved
		if orderFlag != "" {
			order, err := parseOrder(orderFlag)
			if err != nil {
				return err
			}
			ed, err = editor.Resolve(order, configs)
			if err != nil {
				return err
			}
		} else {
			b := editor.New()
			for _, cfg := range configs {
				b.WithConfig(cfg)
			}
			ed, err = b.Detect()
			if err != nil {
				return err
			}
		}

		fmt.Printf("binary:  %s\n", ed.Binary)
		fmt.Printf("editor:  %s\n", ed.Kind)
		if len(ed.Args) > 0 {
			fmt.Printf("args:    %s\n", strings.Join(ed.Args, " "))
		}
		fmt.Printf("via:     %s\n", ed.Source)
		return nil
	},
}

// parseOrder turns a comma list like "config,visual,editor,path" into a
// resolution order.
func parseOrder(s string) ([]editor.ResolveFrom, error) {
	var order []editor.ResolveFrom
	for _, part := range strings.Split(s, ",") {
		switch strings.TrimSpace(strings.ToLower(part)) {
		case "config":
			order = append(order, editor.FromConfig)
		case "visual":
			order = append(order, editor.FromVisual)
		case "editor":
			order = append(order, editor.FromEditor)
		case "path", "pathsearch":
			order = append(order, editor.FromPathSearch)
		default:
			return nil, fmt.Errorf("unknown resolution source %q (valid: config, visual, editor, path)", strings.TrimSpace(part))
		}
	}
	return order, nil
}

func init() {
	detectCmd.Flags().String("order", "", "Comma-separated resolution order (config, visual, editor, path)")
	rootCmd.AddCommand(detectCmd)
}
