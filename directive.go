// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsondoc

package jsondoc

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// directiveMarker introduces one JSON object declaration block.
const directiveMarker = ".. json:object::"

// sourceLine is one dedented directive content line with its document position.
type sourceLine struct {
	Number int
	Text   string
}

// directiveBlock is one extracted `.. json:object::` block before parsing.
type directiveBlock struct {
	Source   string
	Line     int
	Argument string
	Lines    []sourceLine
}

// fieldKeywords enumerates recognized field-line leading tokens.
var fieldKeywords = map[string]struct{}{
	"property": {},
	"member":   {},
	"proptype": {},
	"type":     {},
	"options":  {},
	"example":  {},
}

// parseObjectDirective parses one directive block into an ObjectShape.
//
// Malformed field lines, duplicate properties and bad options degrade to
// registry warnings naming the offending line; only a missing object name
// rejects the whole directive.
func parseObjectDirective(registry *Registry, block directiveBlock) (*ObjectShape, error) {
	name := strings.TrimSpace(block.Argument)
	if name == "" {
		registry.Warn(block.Source, block.Line, "json:object directive without object name")
		return nil, fmt.Errorf("%w at %s:%d", ErrObjectName, block.Source, block.Line)
	}

	shape := &ObjectShape{
		Name:   name,
		Key:    normalizeObjectName(name),
		Source: block.Source,
		Line:   block.Line,
	}

	parser := directiveParser{
		registry: registry,
		block:    block,
		shape:    shape,
	}
	parser.run()

	shape.Description = strings.TrimSpace(strings.Join(parser.body, "\n"))
	return shape, nil
}

// directiveParser walks directive content lines and accumulates parse state.
type directiveParser struct {
	registry *Registry
	block    directiveBlock
	shape    *ObjectShape
	body     []string
	lastProp string
	sawField bool
}

// run processes every content line of the directive block.
func (parser *directiveParser) run() {
	for _, line := range parser.block.Lines {
		trimmed := strings.TrimSpace(line.Text)
		if trimmed == "" {
			parser.lastProp = ""
			if !parser.sawField {
				parser.body = append(parser.body, "")
			}

			continue
		}

		if !strings.HasPrefix(trimmed, ":") {
			parser.continuation(line, trimmed)
			continue
		}

		fieldName, content, ok := splitFieldLine(trimmed)
		if !ok {
			parser.warn(line, "%v: %q", ErrFieldSyntax, trimmed)
			continue
		}

		parser.field(line, fieldName, content)
	}
}

// continuation appends a plain line to the description it belongs to.
func (parser *directiveParser) continuation(line sourceLine, trimmed string) {
	if parser.lastProp != "" {
		property, ok := parser.shape.Property(parser.lastProp)
		if ok {
			property.Description = strings.TrimSpace(property.Description + " " + trimmed)
			return
		}
	}

	if parser.sawField {
		parser.warn(line, "%v: stray text after field list: %q", ErrFieldSyntax, trimmed)
		return
	}

	parser.body = append(parser.body, line.Text)
}

// field dispatches one `:name: content` line to its handler.
func (parser *directiveParser) field(line sourceLine, fieldName, content string) {
	tokens := strings.Fields(fieldName)
	if len(tokens) == 0 {
		parser.warn(line, "%v: empty field name", ErrFieldSyntax)
		return
	}

	if _, ok := fieldKeywords[tokens[0]]; !ok {
		if len(tokens) == 1 {
			parser.option(line, tokens[0], content)
			return
		}

		parser.warn(line, "%v: unrecognized field %q", ErrFieldSyntax, fieldName)
		return
	}

	parser.sawField = true
	parser.lastProp = ""

	switch tokens[0] {
	case "property", "member":
		parser.property(line, tokens[1:], content)
	case "proptype", "type":
		parser.propertyType(line, tokens[1:], content)
	case "options":
		parser.propertyOptions(line, tokens[1:], content)
	case "example":
		parser.propertyExample(line, tokens[1:], content)
	}
}

// option handles directive-level options such as noindex and showexample.
func (parser *directiveParser) option(line sourceLine, name, content string) {
	switch name {
	case "noindex":
		parser.shape.NoIndex = true
	case "showexample":
		format, err := normalizeExampleFormat(content)
		if err != nil {
			parser.warn(line, "%v; using json", err)
			format = ExampleFormatJSON
		}

		parser.shape.Example = format
	default:
		parser.warn(line, "%v %q", ErrUnknownOption, name)
	}
}

// property handles `:property [type] name: description` declarations.
func (parser *directiveParser) property(line sourceLine, tokens []string, content string) {
	var typeToken, name string
	switch len(tokens) {
	case 1:
		name = tokens[0]
	case 2:
		typeToken = tokens[0]
		name = tokens[1]
	default:
		parser.warn(line, "%v: property needs `[type] name`, got %q", ErrFieldSyntax, strings.Join(tokens, " "))
		return
	}

	if _, ok := parser.shape.Property(name); ok {
		parser.warn(line, "%v: %q", ErrDuplicateProperty, name)
		return
	}

	parser.shape.Properties = append(parser.shape.Properties, PropertySpec{
		Name:        name,
		Type:        parseTypeRef(typeToken),
		Description: strings.TrimSpace(content),
	})
	parser.lastProp = name
}

// propertyType handles `:proptype name: type` overrides.
//
// A non-empty proptype replaces the declared type; an empty one never clears
// it. Targets not declared yet are appended as bare properties, matching the
// declaration-order semantics of the field list.
func (parser *directiveParser) propertyType(line sourceLine, tokens []string, content string) {
	if len(tokens) != 1 {
		parser.warn(line, "%v: proptype needs a property name", ErrFieldSyntax)
		return
	}

	name := tokens[0]
	ref := parseTypeRef(content)

	property, ok := parser.shape.Property(name)
	if !ok {
		parser.shape.Properties = append(parser.shape.Properties, PropertySpec{
			Name: name,
			Type: ref,
		})
		return
	}

	if ref.IsZero() {
		return
	}

	property.Type = ref
}

// propertyOptions handles `:options name: opt1, opt2` flag lists.
func (parser *directiveParser) propertyOptions(line sourceLine, tokens []string, content string) {
	if len(tokens) != 1 {
		parser.warn(line, "%v: options needs a property name", ErrFieldSyntax)
		return
	}

	name := tokens[0]
	property, ok := parser.shape.Property(name)
	if !ok {
		parser.warn(line, "%v: options for %q", ErrUnknownProperty, name)
		return
	}

	for _, option := range strings.Split(strings.ReplaceAll(content, " ", ""), ",") {
		if option == "" {
			continue
		}

		if option == "optional" {
			property.Optional = true
		}

		property.Options = append(property.Options, option)
	}
}

// propertyExample handles `:example name: <json literal>` overrides.
func (parser *directiveParser) propertyExample(line sourceLine, tokens []string, content string) {
	if len(tokens) != 1 {
		parser.warn(line, "%v: example needs a property name", ErrFieldSyntax)
		return
	}

	name := tokens[0]
	property, ok := parser.shape.Property(name)
	if !ok {
		parser.warn(line, "%v: example for %q", ErrUnknownProperty, name)
		return
	}

	var value any
	if err := json.Unmarshal([]byte(content), &value); err != nil {
		parser.warn(line, "%v for %q: %v", ErrExampleLiteral, name, err)
		return
	}

	property.Example = &ExampleLiteral{Value: value}
}

// warn records one parse diagnostic at the given line.
func (parser *directiveParser) warn(line sourceLine, format string, args ...any) {
	parser.registry.Warn(parser.block.Source, line.Number, format, args...)
}

// splitFieldLine splits `:field name: content` into its name and content parts.
func splitFieldLine(line string) (string, string, bool) {
	rest := strings.TrimPrefix(line, ":")
	index := strings.Index(rest, ":")
	if index < 0 {
		return "", "", false
	}

	name := strings.TrimSpace(rest[:index])
	if name == "" {
		return "", "", false
	}

	return name, strings.TrimSpace(rest[index+1:]), true
}

// normalizeExampleFormat validates a showexample argument token.
func normalizeExampleFormat(value string) (ExampleFormat, error) {
	switch ExampleFormat(strings.ToLower(strings.TrimSpace(value))) {
	case ExampleFormatNone, ExampleFormatJSON:
		return ExampleFormatJSON, nil
	case ExampleFormatYAML:
		return ExampleFormatYAML, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownExampleFormat, value)
	}
}
