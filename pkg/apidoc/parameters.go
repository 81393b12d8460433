package apidoc

import (
	"fmt"
	"strings"
)

type ParameterDescriptor struct {
	name        string
	description string
}

func ParameterWithName(name string) ParameterDescriptor {
	return ParameterDescriptor{name: name}
}

func (p ParameterDescriptor) Description(description string) ParameterDescriptor {
	p.description = description

	return p
}

type pathParameters struct {
	template    string
	descriptors []ParameterDescriptor
}

// PathParameters documents the {placeholders} of template. The exchange path
// must match the template and every placeholder must be described.
func PathParameters(template string, descriptors ...ParameterDescriptor) Snippet {
	return pathParameters{
		template:    template,
		descriptors: descriptors,
	}
}

func (pathParameters) Name() string { return "path-parameters" }

func (p pathParameters) Render(_ Documenter, ex Exchange) (string, error) {
	values, err := matchTemplate(p.template, ex.URL.Path)
	if err != nil {
		return "", err
	}

	described := make(map[string]bool, len(p.descriptors))

	for _, d := range p.descriptors {
		if _, ok := values[d.name]; !ok {
			return "", fmt.Errorf("%w: parameter %q is not in %s", ErrUndocumented, d.name, p.template)
		}

		described[d.name] = true
	}

	for name := range values {
		if !described[name] {
			return "", fmt.Errorf("%w: parameter %q is not documented", ErrUndocumented, name)
		}
	}

	var b strings.Builder

	fmt.Fprintf(&b, "`%s`\n\n| Parameter | Description |\n|---|---|\n", p.template)

	for _, d := range p.descriptors {
		fmt.Fprintf(&b, "| `%s` | %s |\n", d.name, d.description)
	}

	return b.String(), nil
}

func matchTemplate(template, path string) (map[string]string, error) {
	tmplParts := strings.Split(strings.Trim(template, "/"), "/")
	pathParts := strings.Split(strings.Trim(path, "/"), "/")

	if len(tmplParts) != len(pathParts) {
		return nil, fmt.Errorf("%w: path %s does not match %s", ErrUndocumented, path, template)
	}

	values := make(map[string]string)

	for i, part := range tmplParts {
		if strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}") {
			values[strings.Trim(part, "{}")] = pathParts[i]

			continue
		}

		if part != pathParts[i] {
			return nil, fmt.Errorf("%w: path %s does not match %s", ErrUndocumented, path, template)
		}
	}

	return values, nil
}
