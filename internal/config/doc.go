// Package config manages user-level settings stored at
// ~/.warp-bootstrap/config.yaml, overridable through WARP_BOOTSTRAP_*
// environment variables and command-line flags. It holds defaults such as
// the scaffolding root and an alternative layout file.
package config
