package cli

import (
	"fmt"

	"github.com/AXI0MH1VE/warp-bootstrap/internal/branding"
	"github.com/AXI0MH1VE/warp-bootstrap/internal/progress"
	"github.com/AXI0MH1VE/warp-bootstrap/internal/scaffold"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report missing or out-of-date layout paths",
	Long: `Inspect the scaffolding root without modifying it. Each directory, marker
and keep file is reported as [ OK ], [MISS], [DIFF] (marker content differs
from its template) or [FAIL] (wrong file type).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := resolveLayout()
		if err != nil {
			return err
		}
		root, err := resolveRoot()
		if err != nil {
			return err
		}

		findings := scaffold.New(root).Inspect(l)
		if problems := progress.Findings(cmd.OutOrStdout(), root, findings); problems > 0 {
			return fmt.Errorf("%d path(s) missing or out of date; run '%s' to repair", problems, branding.CLIName())
		}
		return nil
	},
}
