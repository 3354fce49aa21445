// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsondoc

package jsondoc

import (
	"fmt"
	"strings"
)

// buildRenderView prepares data for markdown template rendering.
//
// Example payloads are generated here, after every source has been parsed,
// so references between objects resolve regardless of declaration order.
func buildRenderView(registry *Registry, options Options) renderView {
	title := sanitizeText(options.Title)
	if title == "" {
		title = defaultTitle
	}

	wrapWidth := options.WrapWidth
	if wrapWidth <= 0 {
		wrapWidth = defaultWrapWidth
	}

	view := renderView{
		Title:      title,
		IndexTitle: indexGroupTitle,
		ListMarker: normalizeListMarker(options.ListMarker),
	}

	generator := newExampleGenerator(registry, options.exampleSeed())
	for _, shape := range registry.Shapes() {
		if !shape.NoIndex {
			view.Index = append(view.Index, indexEntryView{
				Name:   escapeInline(shape.Name),
				Anchor: shape.Key,
			})
		}

		view.Objects = append(view.Objects, buildObjectView(registry, generator, shape, wrapWidth))
	}

	view.HasIndex = len(view.Index) > 0
	return view
}

// buildObjectView prepares one object section view.
func buildObjectView(registry *Registry, generator *exampleGenerator, shape *ObjectShape, wrapWidth int) objectView {
	description := resolveInlineRoles(registry, shape.Source, shape.Description)

	out := objectView{
		Name:          escapeInline(shape.Name),
		Anchor:        shape.Key,
		Source:        escapeInline(shape.Source),
		Description:   formatDescriptionMarkdown(description, wrapWidth),
		HasProperties: len(shape.Properties) > 0,
		Properties:    make([]propertyItemView, 0, len(shape.Properties)),
	}

	for _, property := range shape.Properties {
		out.Properties = append(out.Properties, buildPropertyView(registry, shape, property, wrapWidth))
	}

	if shape.Example != ExampleFormatNone {
		attachExampleBlock(registry, generator, shape, &out)
	}

	return out
}

// buildPropertyView prepares one property definition entry.
func buildPropertyView(registry *Registry, shape *ObjectShape, property PropertySpec, wrapWidth int) propertyItemView {
	description := resolveInlineRoles(registry, shape.Source, property.Description)
	required := !property.Optional

	attributes := make([]attributeView, 0, 4)
	attributes = append(attributes,
		attributeView{Name: "Type", Value: typeMarkdown(registry, property.Type)},
		attributeView{Name: "Required", Value: yesNo(required)},
	)

	if extras := extraOptions(property.Options); len(extras) > 0 {
		attributes = append(attributes, attributeView{
			Name:  "Options",
			Value: "*" + strings.Join(extras, "*, *") + "*",
		})
	}

	if property.Example != nil {
		attributes = append(attributes, attributeView{
			Name:  "Example",
			Value: fmt.Sprintf("`%s`", escapeInline(mustJSONInline(property.Example.Value))),
		})
	}

	return propertyItemView{
		Heading:     escapeInline(shape.Name + "." + property.Name),
		Name:        escapeInline(property.Name),
		Description: formatDescriptionMarkdown(description, wrapWidth),
		Attributes:  attributes,
	}
}

// attachExampleBlock generates and encodes one object's example payload.
func attachExampleBlock(registry *Registry, generator *exampleGenerator, shape *ObjectShape, out *objectView) {
	value := generator.Generate(shape)

	switch shape.Example {
	case ExampleFormatYAML:
		data, err := encodeExampleYAML(registry, value, shape)
		if err != nil {
			registry.Warn(shape.Source, shape.Line, "%v for %q: %v", ErrEncodeExampleYAML, shape.Name, err)
			return
		}

		out.ExampleTitle = "YAML Example"
		out.ExampleLanguage = "yaml"
		out.ExampleText = string(data)
	default:
		data, err := encodeExampleJSON(value)
		if err != nil {
			registry.Warn(shape.Source, shape.Line, "%v for %q: %v", ErrEncodeExampleJSON, shape.Name, err)
			return
		}

		out.ExampleTitle = "JSON Example"
		out.ExampleLanguage = "json"
		out.ExampleText = string(data)
	}
}

// typeMarkdown renders one declared type as linked markdown text.
//
// Registered objects link to their section anchor, known primitives link to
// their specification, anything else renders as plain code.
func typeMarkdown(registry *Registry, ref TypeRef) string {
	if ref.IsZero() {
		return "`(unspecified)`"
	}

	inner := typeTokenMarkdown(registry, ref.Name)
	if ref.Array {
		return "array of " + inner
	}

	return inner
}

// typeTokenMarkdown renders one bare type token as linked markdown text.
func typeTokenMarkdown(registry *Registry, token string) string {
	if token == "" {
		return "`(unspecified)`"
	}

	if shape, ok := registry.Lookup(token); ok {
		return fmt.Sprintf("[%s](#%s)", escapeInline(shape.Name), shape.Key)
	}

	if link, ok := primitiveLink(primitiveKind(token)); ok {
		return fmt.Sprintf("[`%s`](%s \"%s\")", escapeInline(token), link.URL, link.Tooltip)
	}

	return fmt.Sprintf("`%s`", escapeInline(token))
}

// extraOptions filters the optional marker out of raw property options.
func extraOptions(options []string) []string {
	out := make([]string, 0, len(options))
	for _, option := range options {
		if option == "optional" {
			continue
		}

		out = append(out, escapeInline(option))
	}

	return out
}

// normalizeListMarker validates list marker and falls back to default.
func normalizeListMarker(value string) string {
	switch strings.TrimSpace(value) {
	case "*":
		return "*"
	case "-":
		return "-"
	default:
		return defaultListMarker
	}
}

// yesNo renders bool as "yes" or "no".
func yesNo(value bool) string {
	if value {
		return "yes"
	}

	return "no"
}
