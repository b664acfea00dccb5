package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/AXI0MH1VE/warp-bootstrap/internal/layout"
	"github.com/AXI0MH1VE/warp-bootstrap/internal/platform"
)

// Default permissions for created artifacts.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// Scaffolder creates layout artifacts under Root. It assumes it is the
// only writer to those paths for the duration of a run.
type Scaffolder struct {
	Root     string
	DryRun   bool
	DirPerm  os.FileMode
	FilePerm os.FileMode
}

// New returns a Scaffolder for root with default permissions.
func New(root string) *Scaffolder {
	return &Scaffolder{
		Root:     root,
		DirPerm:  DirPerm,
		FilePerm: FilePerm,
	}
}

// Run ensures every directory, then writes every marker, then ensures the
// keep file. observe, when non-nil, is called after each completed step.
// The first error aborts the run; nothing already created is rolled back.
func (s *Scaffolder) Run(l *layout.Layout, observe func(Outcome)) (*Result, error) {
	result := &Result{Root: s.Root}
	record := func(o Outcome) {
		result.Outcomes = append(result.Outcomes, o)
		if observe != nil {
			observe(o)
		}
	}

	for _, dir := range l.Directories {
		o, err := s.EnsureDir(dir)
		if err != nil {
			return result, err
		}
		record(o)
	}

	for _, m := range l.Markers {
		o, err := s.WriteMarker(l.Label, m)
		if err != nil {
			return result, err
		}
		record(o)
	}

	if l.Keep != "" {
		o, err := s.EnsureKeep(l.Keep)
		if err != nil {
			return result, err
		}
		record(o)
	}

	return result, nil
}

// EnsureDirs ensures each directory in order, stopping at the first error.
func (s *Scaffolder) EnsureDirs(dirs []string) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(dirs))
	for _, dir := range dirs {
		o, err := s.EnsureDir(dir)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, o)
	}
	return outcomes, nil
}

// WriteMarkers writes each marker in order, stopping at the first error.
func (s *Scaffolder) WriteMarkers(label string, markers []layout.Marker) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(markers))
	for _, m := range markers {
		o, err := s.WriteMarker(label, m)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, o)
	}
	return outcomes, nil
}

// EnsureDir creates rel and any missing parents. An existing directory is
// left alone; an existing non-directory is an error.
func (s *Scaffolder) EnsureDir(rel string) (Outcome, error) {
	o := Outcome{Action: ActionDir, Path: rel}
	target, err := s.resolve(rel)
	if err != nil {
		return o, err
	}

	// Stat follows symlinks like MkdirAll does, so a linked directory counts.
	// Dry runs take the same path to report the failure a real run would hit.
	info, err := os.Stat(target)
	switch {
	case err == nil && info.IsDir():
		o.Status = StatusExisted
		if s.DryRun {
			o.Status = StatusPlanned
		}
		return o, nil
	case err == nil:
		return o, fmt.Errorf("creating directory %s: %w", rel,
			&fs.PathError{Op: "mkdir", Path: target, Err: syscall.ENOTDIR})
	case !errors.Is(err, fs.ErrNotExist):
		return o, fmt.Errorf("creating directory %s: %w", rel, err)
	}

	if s.DryRun {
		o.Status = StatusPlanned
		return o, nil
	}

	if err := os.MkdirAll(target, s.DirPerm); err != nil {
		return o, fmt.Errorf("creating directory %s: %w", rel, err)
	}
	o.Status = StatusCreated
	return o, nil
}

// WriteMarker renders m for label and writes it to m.Path, replacing any
// previous content. The parent directory must already exist.
func (s *Scaffolder) WriteMarker(label string, m layout.Marker) (Outcome, error) {
	o := Outcome{Action: ActionMarker, Path: m.Path}
	target, err := s.resolve(m.Path)
	if err != nil {
		return o, err
	}

	content, err := m.Render(label)
	if err != nil {
		return o, err
	}

	o.Status = StatusCreated
	if _, err := os.Lstat(target); err == nil {
		o.Status = StatusWritten
	}

	if s.DryRun {
		o.Status = StatusPlanned
		return o, nil
	}

	if err := os.WriteFile(target, []byte(content), s.FilePerm); err != nil {
		return o, fmt.Errorf("writing %s: %w", m.Path, err)
	}
	return o, nil
}

// EnsureKeep creates rel as an empty file when it is absent. An existing
// file is never opened for writing, so its content and timestamps survive.
// A dangling symlink gets its target created.
func (s *Scaffolder) EnsureKeep(rel string) (Outcome, error) {
	o := Outcome{Action: ActionKeep, Path: rel}
	target, err := s.resolve(rel)
	if err != nil {
		return o, err
	}

	if s.DryRun {
		o.Status = StatusPlanned
		info, err := os.Stat(target)
		switch {
		case err == nil && info.IsDir():
			return o, fmt.Errorf("creating %s: %w", rel, platform.ErrIsDir)
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return o, fmt.Errorf("creating %s: %w", rel, err)
		}
		return o, nil
	}

	created, err := platform.Touch(target, s.FilePerm)
	if err != nil {
		return o, fmt.Errorf("creating %s: %w", rel, err)
	}
	o.Status = StatusExisted
	if created {
		o.Status = StatusCreated
	}
	return o, nil
}

// resolve joins a layout path onto the root, refusing paths that would
// land outside it.
func (s *Scaffolder) resolve(rel string) (string, error) {
	if err := layout.ValidatePath(rel); err != nil {
		return "", err
	}
	return filepath.Join(s.Root, filepath.FromSlash(rel)), nil
}
