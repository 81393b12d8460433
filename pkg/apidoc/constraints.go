package apidoc

import (
	"reflect"
	"strings"
)

// ConstraintDescriptions reads go-playground/validator tags of a struct and
// describes them in words, keyed by JSON field name.
type ConstraintDescriptions struct {
	byField map[string][]string
}

func NewConstraintDescriptions(v any) ConstraintDescriptions {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	c := ConstraintDescriptions{byField: make(map[string][]string)}

	for i := range t.NumField() {
		field := t.Field(i)

		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			name = field.Name
		}

		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}

		c.byField[name] = describeTag(tag, field.Type)
	}

	return c
}

func (c ConstraintDescriptions) DescriptionsForProperty(name string) []string {
	return c.byField[name]
}

// ConstrainedFields builds field descriptors that carry the constraints of a
// validated request type.
type ConstrainedFields struct {
	descriptions ConstraintDescriptions
}

func NewConstrainedFields(v any) ConstrainedFields {
	return ConstrainedFields{descriptions: NewConstraintDescriptions(v)}
}

func (c ConstrainedFields) WithPath(path string) FieldDescriptor {
	return FieldWithPath(path).Constraints(c.descriptions.DescriptionsForProperty(path)...)
}

func describeTag(tag string, typ reflect.Type) []string {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	isString := typ.Kind() == reflect.String

	var out []string

	for _, rule := range strings.Split(tag, ",") {
		name, param, _ := strings.Cut(rule, "=")

		switch name {
		case "omitempty", "":
		case "notblank":
			out = append(out, "Must not be blank")
		case "required":
			if isString {
				out = append(out, "Must not be blank")
			} else {
				out = append(out, "Must not be null")
			}
		case "gt":
			if param == "0" {
				out = append(out, "Must be positive")
			} else {
				out = append(out, "Must be greater than "+param)
			}
		case "gte":
			if param == "0" {
				out = append(out, "Must be zero or positive")
			} else {
				out = append(out, "Must be at least "+param)
			}
		case "max":
			if isString {
				out = append(out, "Size must be at most "+param)
			} else {
				out = append(out, "Must be at most "+param)
			}
		case "min":
			if isString {
				out = append(out, "Size must be at least "+param)
			} else {
				out = append(out, "Must be at least "+param)
			}
		case "oneof":
			out = append(out, "Must be one of ["+strings.ReplaceAll(param, " ", ", ")+"]")
		default:
			out = append(out, "Must satisfy "+rule)
		}
	}

	return out
}
