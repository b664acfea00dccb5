package layout

import (
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	l := Default()

	wantDirs := []string{"agents", "agents/tools", "ui", "config", "logs"}
	if strings.Join(l.Directories, ",") != strings.Join(wantDirs, ",") {
		t.Errorf("Directories = %v, want %v", l.Directories, wantDirs)
	}

	wantMarkers := []string{"agents/__init__.py", "agents/tools/__init__.py", "ui/__init__.py"}
	if len(l.Markers) != len(wantMarkers) {
		t.Fatalf("got %d markers, want %d", len(l.Markers), len(wantMarkers))
	}
	for i, m := range l.Markers {
		if m.Path != wantMarkers[i] {
			t.Errorf("marker[%d] = %q, want %q", i, m.Path, wantMarkers[i])
		}
	}

	if l.Keep != "logs/.gitkeep" {
		t.Errorf("Keep = %q, want logs/.gitkeep", l.Keep)
	}
	if l.Label != "Local Warp Agent" {
		t.Errorf("Label = %q, want Local Warp Agent", l.Label)
	}
	if len(l.NextSteps) != 5 {
		t.Errorf("got %d next steps, want 5", len(l.NextSteps))
	}
	if issues := l.Check(); len(issues) > 0 {
		t.Errorf("default layout has issues: %v", issues)
	}
}

func TestMarkerPackageName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"agents/__init__.py", "agents"},
		{"agents/tools/__init__.py", "tools"},
		{"ui/__init__.py", "ui"},
		{"__init__.py", "."},
	}
	for _, tt := range tests {
		got := Marker{Path: tt.path}.PackageName()
		if got != tt.want {
			t.Errorf("PackageName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestMarkerRender(t *testing.T) {
	t.Run("default template", func(t *testing.T) {
		got, err := Marker{Path: "agents/__init__.py"}.Render("Local Warp Agent")
		if err != nil {
			t.Fatalf("Render() error: %v", err)
		}
		want := `"""Local Warp Agent - agents package."""` + "\n"
		if got != want {
			t.Errorf("Render() = %q, want %q", got, want)
		}
	})

	t.Run("nested package uses immediate parent", func(t *testing.T) {
		got, err := Marker{Path: "agents/tools/__init__.py", Template: DefaultMarkerTemplate}.Render("Local Warp Agent")
		if err != nil {
			t.Fatalf("Render() error: %v", err)
		}
		want := `"""Local Warp Agent - tools package."""` + "\n"
		if got != want {
			t.Errorf("Render() = %q, want %q", got, want)
		}
	})

	t.Run("trailing newline is not doubled", func(t *testing.T) {
		got, err := Marker{Path: "ui/index.js", Template: "// {{.Package}}\n"}.Render("x")
		if err != nil {
			t.Fatalf("Render() error: %v", err)
		}
		if got != "// ui\n" {
			t.Errorf("Render() = %q, want %q", got, "// ui\n")
		}
	})

	t.Run("multi-line output is rejected", func(t *testing.T) {
		_, err := Marker{Path: "ui/a.py", Template: "one\ntwo"}.Render("x")
		if err == nil {
			t.Fatal("expected error for multi-line template")
		}
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		_, err := Marker{Path: "ui/a.py", Template: "{{.Nope}}"}.Render("x")
		if err == nil {
			t.Fatal("expected error for unknown template field")
		}
	})

	t.Run("bad syntax is rejected", func(t *testing.T) {
		_, err := Marker{Path: "ui/a.py", Template: "{{.Label"}.Render("x")
		if err == nil {
			t.Fatal("expected parse error")
		}
	})
}
