package layout

import (
	"bytes"
	"fmt"
	"path"
	"strings"
	"text/template"

	"github.com/AXI0MH1VE/warp-bootstrap/internal/branding"
)

// FormatVersion is the layout file format version written by Default.
const FormatVersion = "1.0.0"

// DefaultMarkerTemplate renders the single line written into each package marker.
const DefaultMarkerTemplate = `"""{{.Label}} - {{.Package}} package."""`

// Layout is the ordered set of filesystem artifacts to scaffold.
// All paths are slash-separated and relative to the target root.
type Layout struct {
	Version     string   `yaml:"version"`
	Label       string   `yaml:"label,omitempty"`
	Directories []string `yaml:"directories"`
	Markers     []Marker `yaml:"markers,omitempty"`
	Keep        string   `yaml:"keep,omitempty"`
	NextSteps   []string `yaml:"next_steps,omitempty"`
}

// Marker is a package marker file and the template for its single line.
type Marker struct {
	Path     string `yaml:"path"`
	Template string `yaml:"template,omitempty"`
}

// MarkerData holds the variables available to marker templates.
type MarkerData struct {
	Label   string // Project label, e.g. "Local Warp Agent"
	Package string // Name of the marker's parent directory, e.g. "tools"
}

// Default returns the built-in local-warp-agent layout.
func Default() *Layout {
	return &Layout{
		Version: FormatVersion,
		Label:   branding.DisplayName(),
		Directories: []string{
			"agents",
			"agents/tools",
			"ui",
			"config",
			"logs",
		},
		Markers: []Marker{
			{Path: "agents/__init__.py", Template: DefaultMarkerTemplate},
			{Path: "agents/tools/__init__.py", Template: DefaultMarkerTemplate},
			{Path: "ui/__init__.py", Template: DefaultMarkerTemplate},
		},
		Keep: "logs/.gitkeep",
		NextSteps: []string{
			"Run: pip install -r requirements.txt",
			"Visit: " + branding.ProjectURL(),
			"Download remaining Python files from the repo",
			"Start Ollama: ollama serve",
			"Run: python agent_launcher.py",
		},
	}
}

// PackageName returns the name of the marker's immediate parent directory.
func (m Marker) PackageName() string {
	return path.Base(path.Dir(m.Path))
}

// Render executes the marker template for the given label. The result is
// always a single newline-terminated line.
func (m Marker) Render(label string) (string, error) {
	text := m.Template
	if text == "" {
		text = DefaultMarkerTemplate
	}

	tmpl, err := template.New(m.Path).Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing template for %s: %w", m.Path, err)
	}

	var buf bytes.Buffer
	data := MarkerData{Label: label, Package: m.PackageName()}
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template for %s: %w", m.Path, err)
	}

	line := strings.TrimRight(buf.String(), "\r\n")
	if strings.ContainsAny(line, "\r\n") {
		return "", fmt.Errorf("template for %s renders more than one line", m.Path)
	}
	return line + "\n", nil
}

// applyDefaults fills in fields a layout file may leave out.
func (l *Layout) applyDefaults() {
	if l.Label == "" {
		l.Label = branding.DisplayName()
	}
	for i := range l.Markers {
		if l.Markers[i].Template == "" {
			l.Markers[i].Template = DefaultMarkerTemplate
		}
	}
}
