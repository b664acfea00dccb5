package layout

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// ErrInvalid is wrapped by InvalidError so callers can test with errors.Is.
var ErrInvalid = errors.New("invalid layout")

// InvalidError lists every issue found while loading a layout document.
type InvalidError struct {
	Source string
	Issues []ValidationIssue
}

func (e *InvalidError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msgs = append(msgs, issue.String())
	}
	return fmt.Sprintf("%s: %d issue(s): %s", e.Source, len(e.Issues), strings.Join(msgs, "; "))
}

func (e *InvalidError) Unwrap() error { return ErrInvalid }

// Validate runs schema validation, the version check and the path rules
// against raw YAML bytes without building a Layout for the caller.
func Validate(data []byte) (*ValidationResult, error) {
	result, err := ValidateSchema(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return result, nil
	}

	l, err := decode(data)
	if err != nil {
		return nil, err
	}

	var issues []ValidationIssue
	if err := CheckVersion(l.Version); err != nil {
		issues = append(issues, ValidationIssue{Path: "/version", Keyword: "version", Message: err.Error()})
	}
	issues = append(issues, l.Check()...)

	return &ValidationResult{Valid: len(issues) == 0, Issues: issues}, nil
}

// ValidateFile reads a file and validates it as a layout document.
func ValidateFile(path string) (*ValidationResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout %s: %w", path, err)
	}
	return Validate(data)
}

// Parse validates raw YAML bytes and returns the layout they describe.
// source names the document in error messages.
func Parse(source string, data []byte) (*Layout, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	if !result.Valid {
		return nil, &InvalidError{Source: source, Issues: result.Issues}
	}
	return decode(data)
}

// LoadFile reads and parses a layout file.
func LoadFile(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout %s: %w", path, err)
	}
	return Parse(path, data)
}

// Marshal renders a layout as YAML.
func Marshal(l *Layout) ([]byte, error) {
	data, err := yaml.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("marshaling layout: %w", err)
	}
	return data, nil
}

func decode(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}
	l.applyDefaults()
	return &l, nil
}
