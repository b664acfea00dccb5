// Package progress turns scaffolding outcomes into the human-readable
// lines printed while the bootstrap runs.
package progress

import (
	"fmt"
	"io"

	"github.com/AXI0MH1VE/warp-bootstrap/internal/scaffold"
)

// Printer writes progress for one bootstrap run. A Quiet printer drops
// the banner and per-step lines but still prints the closing summary.
type Printer struct {
	w     io.Writer
	label string
	Quiet bool
}

// New returns a Printer writing to w for the project label.
func New(w io.Writer, label string) *Printer {
	return &Printer{w: w, label: label}
}

// Banner prints the opening lines.
func (p *Printer) Banner(dryRun bool) {
	if p.Quiet {
		return
	}
	fmt.Fprintf(p.w, "\n🚀 %s - Project Bootstrap\n\n", p.label)
	if dryRun {
		fmt.Fprint(p.w, "Dry run: nothing will be written.\n\n")
		return
	}
	fmt.Fprint(p.w, "This script will generate all project files and directories.\n\n")
}

// Step prints the line for a completed step.
func (p *Printer) Step(o scaffold.Outcome) {
	if p.Quiet {
		return
	}
	fmt.Fprintln(p.w, Line(o))
}

// Summary prints the completion message and the numbered next steps.
func (p *Printer) Summary(steps []string, dryRun bool) {
	if dryRun {
		fmt.Fprint(p.w, "\n📦 Dry run complete!\n\n")
	} else {
		fmt.Fprint(p.w, "\n📦 Bootstrap complete!\n\n")
	}
	if len(steps) == 0 {
		return
	}
	fmt.Fprintln(p.w, "Next steps:")
	for i, step := range steps {
		fmt.Fprintf(p.w, "%d. %s\n", i+1, step)
	}
	fmt.Fprintln(p.w)
}

// Line formats one outcome. Completed steps always read "Created", even
// for paths that already existed.
func Line(o scaffold.Outcome) string {
	if o.Status == scaffold.StatusPlanned {
		if o.Action == scaffold.ActionDir {
			return "· Would create directory: " + o.Path
		}
		return "· Would create: " + o.Path
	}
	if o.Action == scaffold.ActionDir {
		return "✓ Created directory: " + o.Path
	}
	return "✓ Created: " + o.Path
}

// Findings prints an inspection report using bracketed state tags and
// returns the number of problems found.
func Findings(w io.Writer, root string, findings []scaffold.Finding) int {
	fmt.Fprintf(w, "Layout check: %s\n", root)
	problems := 0
	for _, f := range findings {
		if f.State != scaffold.StateOK {
			problems++
		}
		if f.Detail != "" {
			fmt.Fprintf(w, "  [%s] %s %s (%s)\n", f.State, f.Action, f.Path, f.Detail)
			continue
		}
		fmt.Fprintf(w, "  [%s] %s %s\n", f.State, f.Action, f.Path)
	}
	return problems
}
