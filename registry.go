// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsondoc

package jsondoc

import (
	"fmt"
	"strings"
)

// Warning is one non-fatal build diagnostic with its source location.
type Warning struct {
	// Source is the document path the diagnostic refers to.
	Source string
	// Line is the 1-based line number within Source; zero when unknown.
	Line int
	// Message is the diagnostic text.
	Message string
}

// String renders the warning in source:line: message form.
func (warning Warning) String() string {
	location := strings.TrimSpace(warning.Source)
	if location == "" {
		location = "(unknown)"
	}

	if warning.Line > 0 {
		location = fmt.Sprintf("%s:%d", location, warning.Line)
	}

	return location + ": " + warning.Message
}

// Registry is the build-scoped table of declared object shapes.
//
// One registry lives for exactly one build: it is populated while directives
// are parsed, read-only while examples and cross-references are resolved, and
// discarded when the build ends. It also collects every non-fatal diagnostic
// raised during the build, so a single bad declaration never aborts a run.
type Registry struct {
	shapes   map[string]*ObjectShape
	order    []string
	warnings []Warning
}

// NewRegistry creates an empty build-scoped registry.
func NewRegistry() *Registry {
	return &Registry{
		shapes: make(map[string]*ObjectShape),
	}
}

// Add registers a parsed shape under its normalized name.
//
// A duplicate name keeps the first declaration and reports a warning naming
// both declaration sites.
func (registry *Registry) Add(shape *ObjectShape) error {
	if shape == nil {
		return nil
	}

	key := shape.Key
	if key == "" {
		key = normalizeObjectName(shape.Name)
		shape.Key = key
	}

	if key == "" {
		return ErrObjectName
	}

	if existing, ok := registry.shapes[key]; ok {
		registry.Warn(shape.Source, shape.Line,
			"JSON object %q already documented in %s:%d",
			shape.Name, existing.Source, existing.Line)
		return fmt.Errorf("%w %q", ErrDuplicateObject, shape.Name)
	}

	registry.shapes[key] = shape
	registry.order = append(registry.order, key)
	return nil
}

// Lookup resolves an object name, normalizing it first.
func (registry *Registry) Lookup(name string) (*ObjectShape, bool) {
	shape, ok := registry.shapes[normalizeObjectName(name)]
	return shape, ok
}

// Shapes returns registered shapes in declaration order.
func (registry *Registry) Shapes() []*ObjectShape {
	out := make([]*ObjectShape, 0, len(registry.order))
	for _, key := range registry.order {
		out = append(out, registry.shapes[key])
	}

	return out
}

// Len returns the number of registered shapes.
func (registry *Registry) Len() int {
	return len(registry.order)
}

// Warn records one formatted build diagnostic.
func (registry *Registry) Warn(source string, line int, format string, args ...any) {
	registry.warnings = append(registry.warnings, Warning{
		Source:  source,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	})
}

// Warnings returns collected diagnostics in emission order.
func (registry *Registry) Warnings() []Warning {
	return registry.warnings
}
