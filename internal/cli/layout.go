package cli

import (
	"fmt"

	"github.com/AXI0MH1VE/warp-bootstrap/internal/layout"
	"github.com/spf13/cobra"
)

func init() {
	layoutCmd.AddCommand(layoutShowCmd)
	layoutCmd.AddCommand(layoutValidateCmd)
	rootCmd.AddCommand(layoutCmd)
}

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Inspect and validate scaffolding layouts",
}

var layoutShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective layout as YAML",
	Long: `Print the layout the bootstrap would use. The output is a valid layout
file and can be edited and passed back with --layout.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := resolveLayout()
		if err != nil {
			return err
		}
		data, err := layout.Marshal(l)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var layoutValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a layout file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Layout validation: %s\n", path)

		result, err := layout.ValidateFile(path)
		if err != nil {
			fmt.Fprintf(out, "  [FAIL] %v\n", err)
			return fmt.Errorf("layout validation failed: %w", err)
		}

		if result.Valid {
			fmt.Fprintln(out, "  [ OK ] Valid layout")
			return nil
		}

		fmt.Fprintf(out, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "    - %s\n", issue)
		}
		return fmt.Errorf("layout %s has %d validation issue(s)", path, len(result.Issues))
	},
}
