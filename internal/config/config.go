package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AXI0MH1VE/warp-bootstrap/internal/branding"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyRoot   = "root"   // Directory to scaffold into; empty means the working directory
	KeyLayout = "layout" // Path to a layout YAML file replacing the built-in layout
	KeyQuiet  = "quiet"  // Suppress banner and progress lines
)

// Dir returns the path to the config directory (~/.warp-bootstrap/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.warp-bootstrap/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// A missing config file is not an error; a malformed one is.
func Load() error {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyRoot, "")
	viper.SetDefault(KeyLayout, "")
	viper.SetDefault(KeyQuiet, false)

	if err := viper.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	return nil
}

// BindFlag makes a command-line flag take precedence over the environment
// and config file for key.
func BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("binding %q: flag not defined", key)
	}
	if err := viper.BindPFlag(key, flag); err != nil {
		return fmt.Errorf("binding %q: %w", key, err)
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetBool returns a boolean config value by key.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Reset clears all loaded settings and bindings.
func Reset() {
	viper.Reset()
}
