// Package cli defines the Cobra command tree for warp-bootstrap. The root
// command performs the bootstrap; each other file registers one subcommand
// with the root. Commands delegate to internal packages for the work and
// only handle flags, configuration lookup and output.
package cli
