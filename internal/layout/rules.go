package layout

import (
	"fmt"
	"path"
	"strings"
)

// Check applies the rules the JSON schema cannot express: paths must be
// clean and stay under the root, every marker and the keep file must sit
// inside a listed directory, and no path may be claimed twice.
func (l *Layout) Check() []ValidationIssue {
	var issues []ValidationIssue
	add := func(loc, keyword, format string, args ...interface{}) {
		issues = append(issues, ValidationIssue{
			Path:    loc,
			Keyword: keyword,
			Message: fmt.Sprintf(format, args...),
		})
	}

	if len(l.Directories) == 0 {
		add("/directories", "required", "at least one directory is required")
	}

	dirs := make(map[string]bool, len(l.Directories))
	for i, d := range l.Directories {
		loc := fmt.Sprintf("/directories/%d", i)
		if err := ValidatePath(d); err != nil {
			add(loc, "path", "%v", err)
			continue
		}
		if dirs[d] {
			add(loc, "unique", "directory %q is listed more than once", d)
		}
		dirs[d] = true
	}

	files := make(map[string]bool, len(l.Markers))
	for i, m := range l.Markers {
		loc := fmt.Sprintf("/markers/%d/path", i)
		if err := ValidatePath(m.Path); err != nil {
			add(loc, "path", "%v", err)
			continue
		}
		if dirs[m.Path] {
			add(loc, "conflict", "%q is also listed as a directory", m.Path)
		}
		if files[m.Path] {
			add(loc, "unique", "marker %q is listed more than once", m.Path)
		}
		files[m.Path] = true
		if !l.covers(path.Dir(m.Path)) {
			add(loc, "parent", "parent directory of %q is not in the directory list", m.Path)
		}
		if _, err := m.Render(l.Label); err != nil {
			add(fmt.Sprintf("/markers/%d/template", i), "template", "%v", err)
		}
	}

	if l.Keep != "" {
		switch err := ValidatePath(l.Keep); {
		case err != nil:
			add("/keep", "path", "%v", err)
		case dirs[l.Keep]:
			add("/keep", "conflict", "%q is also listed as a directory", l.Keep)
		case files[l.Keep]:
			add("/keep", "conflict", "%q is also listed as a marker", l.Keep)
		case !l.covers(path.Dir(l.Keep)):
			add("/keep", "parent", "parent directory of %q is not in the directory list", l.Keep)
		}
	}

	return issues
}

// covers reports whether dir exists once every listed directory has been
// created, either because it is listed or because it is an ancestor of one.
func (l *Layout) covers(dir string) bool {
	if dir == "." {
		return true
	}
	for _, d := range l.Directories {
		if d == dir || strings.HasPrefix(d, dir+"/") {
			return true
		}
	}
	return false
}

// ValidatePath checks that p is a clean, relative, slash-separated path that
// does not escape the root it will be joined to.
func ValidatePath(p string) error {
	switch {
	case p == "":
		return fmt.Errorf("empty path")
	case strings.Contains(p, `\`):
		return fmt.Errorf("path %q must use forward slashes", p)
	case path.IsAbs(p):
		return fmt.Errorf("absolute paths are not allowed: %q", p)
	case path.Clean(p) != p:
		return fmt.Errorf("path %q is not clean (want %q)", p, path.Clean(p))
	case p == "." || p == ".." || strings.HasPrefix(p, "../"):
		return fmt.Errorf("path %q escapes the root", p)
	}
	return nil
}
