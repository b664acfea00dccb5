package cli

import (
	"fmt"
	"os"

	"github.com/AXI0MH1VE/warp-bootstrap/internal/branding"
	"github.com/AXI0MH1VE/warp-bootstrap/internal/config"
	"github.com/AXI0MH1VE/warp-bootstrap/internal/layout"
	"github.com/AXI0MH1VE/warp-bootstrap/internal/progress"
	"github.com/AXI0MH1VE/warp-bootstrap/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	rootDir    string
	layoutFile string
	dryRun     bool
	quiet      bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "Directory to scaffold into (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&layoutFile, "layout", "", "Layout YAML file to use instead of the built-in layout")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be created without writing anything")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print the closing instructions")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` bootstrap creates the project skeleton (agents/, agents/tools/,
ui/, config/, logs/), writes the package markers and prints the steps needed
to finish setting up the project.

Positional arguments and unknown flags are ignored.`,
	Args:               cobra.ArbitraryArgs,
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
	RunE: runBootstrap,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}

func runBootstrap(cmd *cobra.Command, args []string) error {
	l, err := resolveLayout()
	if err != nil {
		return err
	}
	root, err := resolveRoot()
	if err != nil {
		return err
	}

	s := scaffold.New(root)
	s.DryRun = dryRun

	p := progress.New(cmd.OutOrStdout(), l.Label)
	p.Quiet = config.GetBool(config.KeyQuiet)

	p.Banner(dryRun)
	if _, err := s.Run(l, p.Step); err != nil {
		return err
	}
	p.Summary(l.NextSteps, dryRun)
	return nil
}

// loadConfig reads the config file and environment, then lets any flags
// defined on cmd override them.
func loadConfig(cmd *cobra.Command) error {
	if err := config.Load(); err != nil {
		return err
	}
	for key, name := range map[string]string{
		config.KeyRoot:   "root",
		config.KeyLayout: "layout",
		config.KeyQuiet:  "quiet",
	} {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if err := config.BindFlag(key, flag); err != nil {
			return err
		}
	}
	return nil
}

// resolveRoot returns the configured scaffolding root, falling back to the
// working directory.
func resolveRoot() (string, error) {
	if root := config.Get(config.KeyRoot); root != "" {
		return root, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return cwd, nil
}

// resolveLayout returns the configured layout file, or the built-in layout.
func resolveLayout() (*layout.Layout, error) {
	path := config.Get(config.KeyLayout)
	if path == "" {
		return layout.Default(), nil
	}
	return layout.LoadFile(path)
}
