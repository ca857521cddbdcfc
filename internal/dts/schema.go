// Package dts renders TypeScript declaration text for CSS modules.
package dts

import (
	"sort"

	"github.com/invopop/jsonschema"
)

// BuildSchema describes an object whose every property is a required string.
// Names are copied, sorted and de-duplicated; the input is left untouched.
func BuildSchema(title string, names []string, additionalProperties bool) *jsonschema.Schema {
	sorted := uniqueSorted(names)

	props := jsonschema.NewProperties()
	for _, name := range sorted {
		props.Set(name, &jsonschema.Schema{Type: "string"})
	}

	schema := &jsonschema.Schema{
		Title:                title,
		Type:                 "object",
		Properties:           props,
		Required:             sorted,
		AdditionalProperties: jsonschema.FalseSchema,
	}
	if additionalProperties {
		schema.AdditionalProperties = jsonschema.TrueSchema
	}
	return schema
}

func uniqueSorted(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	sort.Strings(out)

	// Compact in place
	n := 0
	for i, name := range out {
		if i > 0 && name == out[n-1] {
			continue
		}
		out[n] = name
		n++
	}
	return out[:n]
}
