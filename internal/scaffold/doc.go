// Package scaffold lays a layout.Layout down under a root directory. It
// ensures directories, rewrites package markers and creates the keep file,
// reporting one Outcome per step so callers decide how to present progress.
// Inspect performs the same walk read-only and reports drift.
package scaffold
