package dts

import (
	"regexp"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/yacobolo/scsstypes/internal/errs"
)

// Options controls the rendered declaration.
type Options struct {
	Banner               string
	Name                 string
	ExportNames          []string
	AdditionalProperties bool
}

var identifier = regexp.MustCompile(`^[A-Za-z_$][0-9A-Za-z_$]*$`)

// Synthesize renders the declaration file text for names.
//
// The text holds the banner, an interface with one required string property
// per name in sorted order, one "declare const" per export name and a default
// export of the first one. Lines end in LF and the text ends in one newline.
func Synthesize(names []string, opts Options) (string, error) {
	if !identifier.MatchString(opts.Name) {
		return "", errs.Newf("interface name %q is not a valid identifier", opts.Name)
	}
	if len(opts.ExportNames) == 0 {
		return "", errs.New("at least one export name is required")
	}
	for _, exportName := range opts.ExportNames {
		if !identifier.MatchString(exportName) {
			return "", errs.Newf("export name %q is not a valid identifier", exportName)
		}
	}

	schema := BuildSchema(opts.Name, names, opts.AdditionalProperties)

	sections := []string{RenderInterface(schema, opts.Banner)}
	for _, exportName := range opts.ExportNames {
		sections = append(sections, "declare const "+exportName+": "+opts.Name+";")
	}
	sections = append(sections, "export default "+opts.ExportNames[0]+";")

	out := strings.Join(sections, "\n\n")
	out = strings.ReplaceAll(out, "\r\n", "\n")
	return out + "\n", nil
}

// RenderInterface renders schema as an exported TypeScript interface, preceded
// by banner when it is not empty.
func RenderInterface(schema *jsonschema.Schema, banner string) string {
	var b strings.Builder

	if banner != "" {
		b.WriteString(banner)
		b.WriteString("\n\n")
	}

	b.WriteString("export interface ")
	b.WriteString(schema.Title)

	if schema.Properties == nil || schema.Properties.Len() == 0 {
		if schema.AdditionalProperties == jsonschema.TrueSchema {
			b.WriteString(" {\n  [k: string]: unknown;\n}")
			return b.String()
		}
		b.WriteString(" {}")
		return b.String()
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	b.WriteString(" {\n")
	for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		b.WriteString("  ")
		b.WriteString(propertyKey(pair.Key))
		if !required[pair.Key] {
			b.WriteString("?")
		}
		b.WriteString(": ")
		b.WriteString(tsType(pair.Value))
		b.WriteString(";\n")
	}
	if schema.AdditionalProperties == jsonschema.TrueSchema {
		b.WriteString("  [k: string]: unknown;\n")
	}
	b.WriteString("}")

	return b.String()
}

func tsType(s *jsonschema.Schema) string {
	switch s.Type {
	case "string":
		return "string"
	case "number", "integer":
		return "number"
	case "boolean":
		return "boolean"
	default:
		return "unknown"
	}
}

// propertyKey quotes keys that are not plain identifiers ("foo-bar")
func propertyKey(name string) string {
	if identifier.MatchString(name) {
		return name
	}
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`).Replace(name)
	return `"` + escaped + `"`
}
