// Package branding provides compile-time identity values for the CLI.
//
// The project label written into generated package markers and the URL shown
// in the closing instructions both come from branding.yaml, which Go's
// //go:embed bakes into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	GitHubRepo  string `yaml:"github_repo"`
	ProjectURL  string `yaml:"project_url"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "warp-bootstrap",
			DisplayName: "Local Warp Agent",
			Description: "Bootstrap the local-warp-agent project skeleton",
			HomeDir:     ".warp-bootstrap",
			EnvPrefix:   "WARP_BOOTSTRAP",
			GoModule:    "github.com/AXI0MH1VE/warp-bootstrap",
			GitHubRepo:  "AXI0MH1VE/local-warp-agent",
			ProjectURL:  "https://github.com/AXI0MH1VE/local-warp-agent",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "warp-bootstrap").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable project name. It doubles as the
// label written into generated package markers.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".warp-bootstrap").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "WARP_BOOTSTRAP").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GitHubRepo returns the "owner/repo" string of the scaffolded project.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// ProjectURL returns the page users visit to fetch the remaining sources.
func ProjectURL() string { load(); return defaults.ProjectURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("ROOT") → "WARP_BOOTSTRAP_ROOT".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
