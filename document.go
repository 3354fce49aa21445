// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsondoc

package jsondoc

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// rolePattern matches inline `:json:object:`Name`` cross-reference roles.
var rolePattern = regexp.MustCompile(":json:object:`([^`]+)`")

// Build is one documentation build over a set of structured-text sources.
//
// A build runs in two phases: every source is parsed first, populating the
// registry, and only then are examples generated and markdown rendered. The
// split is what makes forward references work regardless of declaration
// order within or across documents.
type Build struct {
	registry *Registry
	options  Options
}

// NewBuild creates a build with a fresh registry.
func NewBuild(options Options) *Build {
	return &Build{
		registry: NewRegistry(),
		options:  options,
	}
}

// Registry exposes the build-scoped object registry.
func (build *Build) Registry() *Registry {
	return build.registry
}

// Warnings returns every diagnostic collected so far.
func (build *Build) Warnings() []Warning {
	return build.registry.Warnings()
}

// AddSourceFile reads one document from disk and parses its directives.
func (build *Build) AddSourceFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadSourceFile, err)
	}

	build.AddSource(path, string(data))
	return nil
}

// AddSource parses every json:object directive found in one document text.
//
// Parse anomalies degrade to registry warnings; the build never aborts
// because of one bad declaration.
func (build *Build) AddSource(source, text string) {
	for _, block := range scanDocument(source, text) {
		shape, err := parseObjectDirective(build.registry, block)
		if err != nil {
			continue
		}

		// Duplicate names already warned inside Add; first declaration wins.
		_ = build.registry.Add(shape)
	}
}

// Render produces the markdown reference document for all parsed objects.
func (build *Build) Render() (string, error) {
	return renderRegistry(build.registry, build.options)
}

// Example generates one object's example payload in the selected notation.
func (build *Build) Example(name string, format ExampleFormat) ([]byte, error) {
	shape, ok := build.registry.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrObjectNotFound, name)
	}

	format, err := normalizeExampleFormat(string(format))
	if err != nil {
		return nil, err
	}

	generator := newExampleGenerator(build.registry, build.options.exampleSeed())
	value := generator.Generate(shape)

	switch format {
	case ExampleFormatYAML:
		data, err := encodeExampleYAML(build.registry, value, shape)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodeExampleYAML, err)
		}

		return data, nil
	default:
		data, err := encodeExampleJSON(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodeExampleJSON, err)
		}

		return data, nil
	}
}

// scanDocument extracts json:object directive blocks from document text.
func scanDocument(source, text string) []directiveBlock {
	lines := strings.Split(normalizeLineEndings(text), "\n")
	out := make([]directiveBlock, 0, 4)

	for index := 0; index < len(lines); {
		line := lines[index]
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, directiveMarker) {
			index++
			continue
		}

		block := directiveBlock{
			Source:   source,
			Line:     index + 1,
			Argument: strings.TrimSpace(strings.TrimPrefix(trimmed, directiveMarker)),
		}

		markerIndent := leadingIndentColumns(line)
		index++
		body := make([]sourceLine, 0, 16)
		for index < len(lines) {
			content := lines[index]
			if strings.TrimSpace(content) == "" {
				body = append(body, sourceLine{Number: index + 1, Text: ""})
				index++
				continue
			}

			if leadingIndentColumns(content) <= markerIndent {
				break
			}

			body = append(body, sourceLine{Number: index + 1, Text: content})
			index++
		}

		block.Lines = dedentBlock(body)
		out = append(out, block)
	}

	return out
}

// dedentBlock strips the common leading indent from directive content lines
// and trims trailing blank lines.
func dedentBlock(lines []sourceLine) []sourceLine {
	indent := -1
	for _, line := range lines {
		if strings.TrimSpace(line.Text) == "" {
			continue
		}

		columns := leadingIndentColumns(line.Text)
		if indent < 0 || columns < indent {
			indent = columns
		}
	}

	if indent < 0 {
		return nil
	}

	out := make([]sourceLine, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line.Text) == "" {
			out = append(out, sourceLine{Number: line.Number, Text: ""})
			continue
		}

		out = append(out, sourceLine{
			Number: line.Number,
			Text:   stripIndentColumns(line.Text, indent),
		})
	}

	for len(out) > 0 && out[len(out)-1].Text == "" {
		out = out[:len(out)-1]
	}

	return out
}

// stripIndentColumns removes up to the given visual indent width from a line.
func stripIndentColumns(line string, columns int) string {
	stripped := 0
	for index, r := range line {
		if stripped >= columns {
			return line[index:]
		}

		switch r {
		case ' ':
			stripped++
		case '\t':
			stripped += 4
		default:
			return line[index:]
		}
	}

	return ""
}

// resolveInlineRoles replaces json:object roles with markdown links against
// the registry; unresolved targets warn and render as plain code.
func resolveInlineRoles(registry *Registry, source string, text string) string {
	return rolePattern.ReplaceAllStringFunc(text, func(match string) string {
		target := rolePattern.FindStringSubmatch(match)[1]
		shape, ok := registry.Lookup(target)
		if !ok {
			registry.Warn(source, 0, "unresolved json:object reference %q", target)
			return "`" + target + "`"
		}

		return fmt.Sprintf("[%s](#%s)", shape.Name, shape.Key)
	})
}
