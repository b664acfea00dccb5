package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/AXI0MH1VE/warp-bootstrap/internal/layout"
)

// State is the condition of one layout path on disk.
type State int

const (
	StateOK State = iota
	StateMissing
	StateDiffers
	StateWrongType
	StateError
)

// String returns the short tag used in check output.
func (s State) String() string {
	switch s {
	case StateOK:
		return " OK "
	case StateMissing:
		return "MISS"
	case StateDiffers:
		return "DIFF"
	case StateWrongType:
		return "FAIL"
	default:
		return "ERR "
	}
}

// Finding describes one inspected layout path.
type Finding struct {
	Action Action
	Path   string
	State  State
	Detail string
}

// Healthy reports whether every finding is StateOK.
func Healthy(findings []Finding) bool {
	for _, f := range findings {
		if f.State != StateOK {
			return false
		}
	}
	return true
}

// Inspect compares the layout against what exists under Root without
// modifying anything. Markers are StateDiffers when their content no
// longer matches the rendered template.
func (s *Scaffolder) Inspect(l *layout.Layout) []Finding {
	var findings []Finding

	for _, dir := range l.Directories {
		f := Finding{Action: ActionDir, Path: dir}
		info, err := s.stat(dir)
		switch {
		case err != nil:
			f.State, f.Detail = classify(err)
		case !info.IsDir():
			f.State, f.Detail = StateWrongType, "not a directory"
		}
		findings = append(findings, f)
	}

	for _, m := range l.Markers {
		findings = append(findings, s.inspectMarker(l.Label, m))
	}

	if l.Keep != "" {
		f := Finding{Action: ActionKeep, Path: l.Keep}
		info, err := s.stat(l.Keep)
		switch {
		case err != nil:
			f.State, f.Detail = classify(err)
		case info.IsDir():
			f.State, f.Detail = StateWrongType, "is a directory"
		}
		findings = append(findings, f)
	}

	return findings
}

func (s *Scaffolder) inspectMarker(label string, m layout.Marker) Finding {
	f := Finding{Action: ActionMarker, Path: m.Path}

	want, err := m.Render(label)
	if err != nil {
		f.State, f.Detail = StateError, err.Error()
		return f
	}

	target, err := s.resolve(m.Path)
	if err != nil {
		f.State, f.Detail = StateError, err.Error()
		return f
	}

	got, err := os.ReadFile(target)
	switch {
	case err == nil:
		if string(got) != want {
			f.State, f.Detail = StateDiffers, "content does not match template"
		}
	default:
		info, statErr := os.Stat(target)
		if statErr == nil && info.IsDir() {
			f.State, f.Detail = StateWrongType, "is a directory"
			return f
		}
		f.State, f.Detail = classify(err)
	}
	return f
}

func (s *Scaffolder) stat(rel string) (fs.FileInfo, error) {
	target, err := s.resolve(rel)
	if err != nil {
		return nil, err
	}
	return os.Stat(target)
}

func classify(err error) (State, string) {
	if errors.Is(err, fs.ErrNotExist) {
		return StateMissing, "does not exist"
	}
	return StateError, fmt.Sprint(err)
}
