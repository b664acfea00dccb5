package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AXI0MH1VE/warp-bootstrap/internal/layout"
)

func TestInspectHealthyAfterRun(t *testing.T) {
	root := t.TempDir()
	s := New(root)
	if _, err := s.Run(layout.Default(), nil); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	findings := s.Inspect(layout.Default())
	if len(findings) != 9 {
		t.Fatalf("got %d findings, want 9", len(findings))
	}
	if !Healthy(findings) {
		for _, f := range findings {
			t.Logf("[%s] %s %s", f.State, f.Path, f.Detail)
		}
		t.Error("expected healthy layout after Run")
	}
}

func TestInspectDrift(t *testing.T) {
	root := t.TempDir()
	s := New(root)
	if _, err := s.Run(layout.Default(), nil); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	// Edited marker, missing directory, keep replaced by a directory.
	writeFile(t, filepath.Join(root, "ui", "__init__.py"), "edited\n")
	if err := os.Remove(filepath.Join(root, "config")); err != nil {
		t.Fatal(err)
	}
	keep := filepath.Join(root, "logs", ".gitkeep")
	if err := os.Remove(keep); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(keep, 0755); err != nil {
		t.Fatal(err)
	}

	states := map[string]State{}
	for _, f := range s.Inspect(layout.Default()) {
		states[f.Path] = f.State
	}

	tests := []struct {
		path string
		want State
	}{
		{"agents", StateOK},
		{"config", StateMissing},
		{"ui/__init__.py", StateDiffers},
		{"agents/__init__.py", StateOK},
		{"logs/.gitkeep", StateWrongType},
	}
	for _, tt := range tests {
		if got := states[tt.path]; got != tt.want {
			t.Errorf("state of %s = %s, want %s", tt.path, got, tt.want)
		}
	}
}

func TestInspectEmptyRoot(t *testing.T) {
	findings := New(t.TempDir()).Inspect(layout.Default())
	if Healthy(findings) {
		t.Fatal("empty root should not be healthy")
	}
	for _, f := range findings {
		if f.State != StateMissing {
			t.Errorf("%s state = %s, want MISS", f.Path, f.State)
		}
	}
}

func TestInspectDoesNotWrite(t *testing.T) {
	root := t.TempDir()
	New(root).Inspect(layout.Default())

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("Inspect created %d entries", len(entries))
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateOK, " OK "},
		{StateMissing, "MISS"},
		{StateDiffers, "DIFF"},
		{StateWrongType, "FAIL"},
		{StateError, "ERR "},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
