// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsondoc

package jsondoc

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// defaultTitle is used when caller does not provide custom title.
	defaultTitle = "JSON object reference"
	// defaultTemplateName is used when caller does not provide template name.
	defaultTemplateName = "list"
	// defaultWrapWidth wraps plain description paragraphs at this width.
	defaultWrapWidth = 80
	// defaultListMarker is used when caller does not provide list marker style.
	defaultListMarker = "*"
	// indexGroupTitle is the fixed top-level grouping for indexed objects.
	indexGroupTitle = "JSON Objects"
)

const (
	templateListName  = "list"
	templateTableName = "table"
)

// Options configures one documentation build.
type Options struct {
	// Title is the rendered document title.
	Title string
	// TemplateName selects a built-in markdown template ("list" or "table").
	TemplateName string
	// TemplateText overrides built-in templates with custom template text.
	TemplateText string
	// WrapWidth wraps plain description paragraphs; zero uses the default.
	WrapWidth int
	// ListMarker is the unordered list marker ("*" or "-").
	ListMarker string
	// ExampleSeed seeds the example value synthesizer; zero uses the fixed
	// default so repeated builds of unchanged sources stay identical.
	ExampleSeed uint64
}

// exampleSeed resolves the effective synthesizer seed.
func (options Options) exampleSeed() uint64 {
	if options.ExampleSeed != 0 {
		return options.ExampleSeed
	}

	return defaultExampleSeed
}

// renderView is the root view model passed to markdown templates.
type renderView struct {
	Title      string
	IndexTitle string
	ListMarker string
	Index      []indexEntryView
	HasIndex   bool
	Objects    []objectView
}

// indexEntryView is one contents entry under the index grouping.
type indexEntryView struct {
	Name   string
	Anchor string
}

// objectView represents one documented object section in markdown output.
type objectView struct {
	Name            string
	Anchor          string
	Source          string
	Description     string
	Properties      []propertyItemView
	HasProperties   bool
	ExampleTitle    string
	ExampleLanguage string
	ExampleText     string
}

// propertyItemView represents one property entry inside an object section.
type propertyItemView struct {
	Heading     string
	Name        string
	Description string
	Attributes  []attributeView
}

// attributeView is a single rendered name/value metadata item.
type attributeView struct {
	Name  string
	Value string
}

// RenderFiles reads documents from disk and renders the markdown reference.
//
// Collected build warnings are returned alongside the rendered text even
// when rendering succeeds.
func RenderFiles(paths []string, options Options) (string, []Warning, error) {
	build := NewBuild(options)
	for _, path := range paths {
		if err := build.AddSourceFile(path); err != nil {
			return "", build.Warnings(), err
		}
	}

	out, err := build.Render()
	return out, build.Warnings(), err
}

// Render parses one document text and renders the markdown reference.
func Render(text string, options Options) (string, []Warning, error) {
	build := NewBuild(options)
	build.AddSource("(memory)", text)

	out, err := build.Render()
	return out, build.Warnings(), err
}

// renderRegistry renders every registered shape through the markdown template.
func renderRegistry(registry *Registry, options Options) (string, error) {
	view := buildRenderView(registry, options)

	markdownTemplate, err := resolveTemplate(options)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := markdownTemplate.Execute(&out, view); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecuteMarkdownTemplate, err)
	}

	return ensureTrailingNewline(normalizeMarkdownOutput(out.String())), nil
}

// BuiltinTemplateNames returns all available built-in template names.
func BuiltinTemplateNames() []string {
	names := make([]string, 0, len(builtInTemplateFiles))
	for name := range builtInTemplateFiles {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}
