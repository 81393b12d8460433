package apidoc

import (
	"fmt"
	"slices"
	"strings"
)

type FieldDescriptor struct {
	path        string
	description string
	constraints string
	ignored     bool
	optional    bool
}

func FieldWithPath(path string) FieldDescriptor {
	return FieldDescriptor{path: path}
}

func (f FieldDescriptor) Description(description string) FieldDescriptor {
	f.description = description

	return f
}

// Ignored marks a field that may appear in the payload but is left out of the
// table (server-managed fields on requests).
func (f FieldDescriptor) Ignored() FieldDescriptor {
	f.ignored = true

	return f
}

// Optional allows the field to be absent from the payload.
func (f FieldDescriptor) Optional() FieldDescriptor {
	f.optional = true

	return f
}

func (f FieldDescriptor) Constraints(constraints ...string) FieldDescriptor {
	f.constraints = strings.Join(constraints, ". ")

	return f
}

type fieldsSnippet struct {
	name        string
	request     bool
	descriptors []FieldDescriptor
}

func RequestFields(descriptors ...FieldDescriptor) Snippet {
	return fieldsSnippet{name: "request-fields", request: true, descriptors: descriptors}
}

func ResponseFields(descriptors ...FieldDescriptor) Snippet {
	return fieldsSnippet{name: "response-fields", descriptors: descriptors}
}

func (s fieldsSnippet) Name() string { return s.name }

func (s fieldsSnippet) Render(_ Documenter, ex Exchange) (string, error) {
	body := ex.ResponseBody
	if s.request {
		body = ex.RequestBody
	}

	payload, err := flatten(body)
	if err != nil {
		return "", err
	}

	if err = s.verify(payload); err != nil {
		return "", err
	}

	withConstraints := slices.ContainsFunc(s.descriptors, func(f FieldDescriptor) bool {
		return f.constraints != ""
	})

	var b strings.Builder

	b.WriteString("| Path | Type | Description |")

	if withConstraints {
		b.WriteString(" Constraints |\n|---|---|---|---|\n")
	} else {
		b.WriteString("\n|---|---|---|\n")
	}

	for _, f := range s.descriptors {
		if f.ignored {
			continue
		}

		fmt.Fprintf(&b, "| `%s` | %s | %s |", f.path, jsonType(payload[f.path]), f.description)

		if withConstraints {
			fmt.Fprintf(&b, " %s |", f.constraints)
		}

		b.WriteString("\n")
	}

	return b.String(), nil
}

// verify mirrors the rules of Spring REST Docs: every payload field must be
// described and every described, non-optional field must be present.
func (s fieldsSnippet) verify(payload map[string]any) error {
	var undocumented, missing []string

	for path := range payload {
		covered := slices.ContainsFunc(s.descriptors, func(f FieldDescriptor) bool {
			return f.path == path || strings.HasPrefix(path, f.path+".")
		})

		if !covered {
			undocumented = append(undocumented, path)
		}
	}

	for _, f := range s.descriptors {
		if _, ok := payload[f.path]; !ok && !f.optional {
			missing = append(missing, f.path)
		}
	}

	if len(undocumented) == 0 && len(missing) == 0 {
		return nil
	}

	slices.Sort(undocumented)
	slices.Sort(missing)

	return fmt.Errorf("%w: undocumented %v, missing %v", ErrUndocumented, undocumented, missing)
}

// flatten maps dotted paths of nested objects to their values. Arrays are
// leaves.
func flatten(body []byte) (map[string]any, error) {
	out := make(map[string]any)

	if len(strings.TrimSpace(string(body))) == 0 {
		return out, nil
	}

	var root map[string]any

	if err := json.Unmarshal(body, &root); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	var walk func(prefix string, m map[string]any)

	walk = func(prefix string, m map[string]any) {
		for k, v := range m {
			path := prefix + k
			out[path] = v

			if nested, ok := v.(map[string]any); ok {
				walk(path+".", nested)
			}
		}
	}

	walk("", root)

	return out, nil
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "Null"
	case string:
		return "String"
	case float64:
		return "Number"
	case bool:
		return "Boolean"
	case []any:
		return "Array"
	case map[string]any:
		return "Object"
	default:
		return "Varies"
	}
}
