// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsondoc

package jsondoc

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

const (
	// exampleArrayLength is the element count for primitive-typed arrays.
	exampleArrayLength = 2
	// exampleArrayRefLength is the element count for object-typed arrays,
	// kept at one so nested payloads stay readable.
	exampleArrayRefLength = 1
	// unspecifiedPlaceholder marks properties declared without any type.
	unspecifiedPlaceholder = "� (Unspecified)"
)

// exampleMember is one key/value pair of a generated example payload.
type exampleMember struct {
	Key   string
	Value any
}

// exampleObject is a generated example payload that preserves property
// declaration order through JSON and YAML encoding.
type exampleObject []exampleMember

// MarshalJSON encodes the payload with members in declaration order.
func (object exampleObject) MarshalJSON() ([]byte, error) {
	var out bytes.Buffer
	out.WriteByte('{')

	for index, member := range object {
		if index > 0 {
			out.WriteByte(',')
		}

		key, err := json.Marshal(member.Key)
		if err != nil {
			return nil, err
		}

		out.Write(key)
		out.WriteByte(':')

		value, err := json.Marshal(member.Value)
		if err != nil {
			return nil, err
		}

		out.Write(value)
	}

	out.WriteByte('}')
	return out.Bytes(), nil
}

// exampleGenerator turns object shapes into concrete example payloads.
//
// Object references resolve against the build registry at generation time.
// Every anomaly degrades to a placeholder value plus a registry warning, so
// one bad declaration never aborts a build.
type exampleGenerator struct {
	registry *Registry
	faker    *gofakeit.Faker
	active   map[string]struct{}
}

// newExampleGenerator creates a generator with a seeded synthesizer.
func newExampleGenerator(registry *Registry, seed uint64) *exampleGenerator {
	return &exampleGenerator{
		registry: registry,
		faker:    gofakeit.New(seed),
		active:   make(map[string]struct{}),
	}
}

// Generate builds the example payload for one shape, properties in
// declaration order.
func (generator *exampleGenerator) Generate(shape *ObjectShape) exampleObject {
	generator.active[shape.Key] = struct{}{}
	defer delete(generator.active, shape.Key)

	out := make(exampleObject, 0, len(shape.Properties))
	for _, property := range shape.Properties {
		out = append(out, exampleMember{
			Key:   property.Name,
			Value: generator.propertyValue(shape, property),
		})
	}

	return out
}

// propertyValue produces the value for one property declaration.
func (generator *exampleGenerator) propertyValue(shape *ObjectShape, property PropertySpec) any {
	if property.Example != nil {
		return property.Example.Value
	}

	ref := property.Type
	if ref.IsZero() {
		return unspecifiedPlaceholder
	}

	if ref.Array {
		length := exampleArrayLength
		if _, ok := generator.registry.Lookup(ref.Name); ok {
			length = exampleArrayRefLength
		}

		items := make([]any, 0, length)
		for range length {
			items = append(items, generator.typedValue(shape, property.Name, ref.Name))
		}

		return items
	}

	return generator.typedValue(shape, property.Name, ref.Name)
}

// typedValue resolves one type token: registered object first, primitive
// synthesizer second, unknown placeholder last.
func (generator *exampleGenerator) typedValue(shape *ObjectShape, propertyName, token string) any {
	if token == "" {
		return unspecifiedPlaceholder
	}

	if target, ok := generator.registry.Lookup(token); ok {
		if _, entered := generator.active[target.Key]; entered {
			generator.registry.Warn(shape.Source, shape.Line,
				"circular reference to %q while generating example for %q",
				target.Name, shape.Name)
			return fmt.Sprintf("{circular %s reference}", target.Name)
		}

		return generator.Generate(target)
	}

	if value, ok := synthesizeValue(generator.faker, primitiveKind(token)); ok {
		return value
	}

	generator.registry.Warn(shape.Source, shape.Line,
		"unknown type %q for property %q of %q", token, propertyName, shape.Name)
	return fmt.Sprintf("{%s object}", token)
}

// encodeExampleJSON serializes one example payload as pretty JSON.
func encodeExampleJSON(value any) ([]byte, error) {
	var out bytes.Buffer
	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")

	if err := encoder.Encode(value); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// encodeExampleYAML serializes one example payload as YAML with property
// descriptions rendered as key head comments.
func encodeExampleYAML(registry *Registry, value exampleObject, shape *ObjectShape) ([]byte, error) {
	node, err := yamlNodeForValue(value)
	if err != nil {
		return nil, err
	}

	annotateExampleNode(registry, node, shape)

	document := &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{node},
	}

	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)

	if err := encoder.Encode(document); err != nil {
		return nil, err
	}

	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// annotateExampleNode assigns property descriptions to YAML map keys and
// recurses into referenced object payloads.
func annotateExampleNode(registry *Registry, node *yaml.Node, shape *ObjectShape) {
	if node == nil || shape == nil || node.Kind != yaml.MappingNode {
		return
	}

	for index := 0; index+1 < len(node.Content); index += 2 {
		keyNode := node.Content[index]
		valueNode := node.Content[index+1]

		property, ok := shape.Property(keyNode.Value)
		if !ok {
			continue
		}

		if comment := commentText(property.Description); comment != "" {
			keyNode.HeadComment = comment
		}

		target, ok := registry.Lookup(property.Type.Name)
		if !ok {
			continue
		}

		if property.Type.Array && valueNode.Kind == yaml.SequenceNode {
			for _, item := range valueNode.Content {
				annotateExampleNode(registry, item, target)
			}

			continue
		}

		annotateExampleNode(registry, valueNode, target)
	}
}

// commentText strips blank lines from a description used as a YAML comment.
func commentText(description string) string {
	lines := strings.Split(normalizeLineEndings(description), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		out = append(out, line)
	}

	return strings.Join(out, "\n")
}

// yamlNodeForValue builds a deterministic yaml.Node tree from a generated
// payload value.
func yamlNodeForValue(value any) (*yaml.Node, error) {
	switch typed := value.(type) {
	case nil:
		return yamlScalarNode("!!null", "null"), nil

	case bool:
		return yamlScalarNode("!!bool", strconv.FormatBool(typed)), nil

	case string:
		return yamlScalarNode("!!str", typed), nil

	case int:
		return yamlScalarNode("!!int", strconv.Itoa(typed)), nil

	case int64:
		return yamlScalarNode("!!int", strconv.FormatInt(typed, 10)), nil

	case float64:
		return yamlScalarNode("!!float", strconv.FormatFloat(typed, 'g', -1, 64)), nil

	case json.Number:
		if int64Value, err := typed.Int64(); err == nil {
			return yamlScalarNode("!!int", strconv.FormatInt(int64Value, 10)), nil
		}

		float64Value, err := typed.Float64()
		if err != nil {
			return nil, err
		}

		return yamlScalarNode("!!float", strconv.FormatFloat(float64Value, 'g', -1, 64)), nil

	case exampleObject:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, member := range typed {
			valueNode, err := yamlNodeForValue(member.Value)
			if err != nil {
				return nil, err
			}

			node.Content = append(node.Content, yamlScalarNode("!!str", member.Key), valueNode)
		}

		return node, nil

	case map[string]any:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range sortedKeys(typed) {
			valueNode, err := yamlNodeForValue(typed[key])
			if err != nil {
				return nil, err
			}

			node.Content = append(node.Content, yamlScalarNode("!!str", key), valueNode)
		}

		return node, nil

	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range typed {
			valueNode, err := yamlNodeForValue(item)
			if err != nil {
				return nil, err
			}

			node.Content = append(node.Content, valueNode)
		}

		return node, nil

	default:
		data, err := json.Marshal(typed)
		if err != nil {
			return nil, err
		}

		var normalized any
		if err := json.Unmarshal(data, &normalized); err != nil {
			return nil, err
		}

		return yamlNodeForValue(normalized)
	}
}

// yamlScalarNode creates one scalar yaml.Node with an explicit tag.
func yamlScalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   tag,
		Value: value,
	}
}

// sortedKeys returns map keys in deterministic sorted order.
func sortedKeys(values map[string]any) []string {
	out := make([]string, 0, len(values))
	for key := range values {
		out = append(out, key)
	}

	sort.Strings(out)
	return out
}
