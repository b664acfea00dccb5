package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AXI0MH1VE/warp-bootstrap/internal/config"
	"github.com/spf13/cobra"
)

var configKeys = map[string]string{
	config.KeyRoot:   "directory to scaffold into",
	config.KeyLayout: "layout YAML file replacing the built-in layout",
	config.KeyQuiet:  "suppress banner and progress lines (true/false)",
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write settings stored at ~/.warp-bootstrap/config.yaml.

Keys:
` + describeKeys(),
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := checkKey(key); err != nil {
			return err
		}
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkKey(args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

func checkKey(key string) error {
	if _, ok := configKeys[key]; !ok {
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(sortedKeys(), ", "))
	}
	return nil
}

func sortedKeys() []string {
	keys := make([]string, 0, len(configKeys))
	for k := range configKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func describeKeys() string {
	var b strings.Builder
	for _, k := range sortedKeys() {
		fmt.Fprintf(&b, "  %-7s %s\n", k, configKeys[k])
	}
	return b.String()
}
