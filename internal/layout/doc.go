// Package layout describes the project skeleton the bootstrapper lays down:
// the ordered directory list, the package markers with their one-line
// templates, the empty keep file and the closing next steps. The built-in
// layout comes from Default; alternative layouts can be loaded from YAML
// files and are checked against an embedded JSON Schema plus path rules.
package layout
