package layout

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/layout.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// ValidationResult is the schema verdict for one layout document. Issues is
// empty when Valid is true.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue is one problem in a layout document. Path is a JSON
// pointer into the document such as "/markers/0/path"; Keyword names the
// schema keyword or semantic rule that rejected it.
type ValidationIssue struct {
	Path    string
	Message string
	Keyword string
}

func (i ValidationIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("decoding layout schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("layout.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("registering layout schema: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("layout.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling layout schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// ValidateSchema checks a YAML layout document against the embedded schema.
// Malformed YAML returns an error; a well-formed document that breaks the
// schema returns a result listing the offending fields.
func ValidateSchema(data []byte) (*ValidationResult, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	// The validator wants json.Number, so re-decode through encoding/json.
	jsonData, err := json.Marshal(toJSONValue(raw))
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return nil, fmt.Errorf("validating layout: %w", err)
	}

	return &ValidationResult{
		Valid:  false,
		Issues: extractIssues(validationErr),
	}, nil
}

// extractIssues flattens the error tree into one issue per failing leaf
// keyword, dropping repeats. A tree without usable leaves collapses into a
// single issue carrying the validator's own message.
func extractIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	seen := make(map[ValidationIssue]bool)
	var issues []ValidationIssue
	for _, issue := range leafIssues(ve) {
		if !seen[issue] {
			seen[issue] = true
			issues = append(issues, issue)
		}
	}
	if len(issues) == 0 {
		return []ValidationIssue{{Message: ve.Error()}}
	}
	return issues
}

func leafIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	if len(ve.Causes) > 0 {
		var out []ValidationIssue
		for _, cause := range ve.Causes {
			out = append(out, leafIssues(cause)...)
		}
		return out
	}
	if ve.ErrorKind == nil {
		return nil
	}

	kwPath := ve.ErrorKind.KeywordPath()
	if len(kwPath) == 0 {
		return nil
	}
	keyword := kwPath[len(kwPath)-1]
	if keyword == "$ref" || keyword == "allOf" {
		return nil
	}

	var path string
	if len(ve.InstanceLocation) > 0 {
		path = "/" + strings.Join(ve.InstanceLocation, "/")
	}
	return []ValidationIssue{{
		Path:    path,
		Message: ve.ErrorKind.LocalizedString(printer),
		Keyword: keyword,
	}}
}

// toJSONValue rewrites a decoded YAML tree so encoding/json accepts it.
// yaml.v3 yields string-keyed maps for documents, but nested flow mappings
// with non-string keys still arrive as map[interface{}]interface{}.
func toJSONValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		for k, elem := range val {
			val[k] = toJSONValue(elem)
		}
		return val
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, elem := range val {
			m[fmt.Sprint(k)] = toJSONValue(elem)
		}
		return m
	case []interface{}:
		for i, elem := range val {
			val[i] = toJSONValue(elem)
		}
		return val
	default:
		return val
	}
}
