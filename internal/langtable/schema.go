package langtable

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// ValidationError collects the individual causes of a failed schema
// validation.
type ValidationError struct {
	Errors []string
}

func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "language table validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("language table validation failed: %s", e.Errors[0])
	}
	return fmt.Sprintf("language table validation failed: %s", strings.Join(e.Errors, "; "))
}

// validateYAML checks raw YAML bytes against the embedded JSON Schema
// before the document is decoded into Go structs. A malformed table is
// a programming error in the data, not a runtime condition callers can
// recover from, so the caller panics on failure.
func validateYAML(name string, content []byte) error {
	var data interface{}
	if err := yaml.Unmarshal(content, &data); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}

	schemaData, err := schemaFS.ReadFile("languages.schema.json")
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	schema, err := jsonschema.CompileString("languages.schema.json", string(schemaData))
	if err != nil {
		return fmt.Errorf("compiling schema: %w", err)
	}

	if err := schema.Validate(stringKeyed(data)); err != nil {
		var causes []string
		if verr, ok := err.(*jsonschema.ValidationError); ok {
			for _, c := range verr.Causes {
				causes = append(causes, c.Message)
			}
			if len(causes) == 0 {
				causes = append(causes, verr.Message)
			}
		} else {
			causes = append(causes, err.Error())
		}
		return ValidationError{Errors: causes}
	}

	return nil
}

// stringKeyed converts the map[interface{}]interface{} that yaml.v3
// happily hands back for nested maps into map[string]interface{}, which
// is what jsonschema's validator expects to walk.
func stringKeyed(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[k] = stringKeyed(val)
		}
		return out
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[fmt.Sprintf("%v", k)] = stringKeyed(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, val := range t {
			out[i] = stringKeyed(val)
		}
		return out
	default:
		return v
	}
}
