package layout

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// SupportedVersions is the range of layout format versions this build reads.
const SupportedVersions = "^1.0.0"

// CheckVersion reports whether a layout format version can be read.
// A leading "v" is tolerated.
func CheckVersion(version string) error {
	v, err := parseSemver(version)
	if err != nil {
		return fmt.Errorf("parsing layout version %q: %w", version, err)
	}
	c, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return fmt.Errorf("parsing supported range %q: %w", SupportedVersions, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("layout version %s is not supported (want %s)", v, SupportedVersions)
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
