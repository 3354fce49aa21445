// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsondoc

package jsondoc

import "strings"

const (
	// ExampleFormatNone disables example payload rendering for an object.
	ExampleFormatNone ExampleFormat = ""
	// ExampleFormatJSON renders the example payload as JSON.
	ExampleFormatJSON ExampleFormat = "json"
	// ExampleFormatYAML renders the example payload as YAML.
	ExampleFormatYAML ExampleFormat = "yaml"
)

// ExampleFormat selects the literal notation for a generated example payload.
type ExampleFormat string

// ObjectShape is one named JSON object declaration parsed from a directive.
//
// Shapes are immutable once parsed: the example generator and the renderer
// only read them.
type ObjectShape struct {
	// Name is the display name exactly as written in the directive argument.
	Name string
	// Key is the normalized registry key derived from Name.
	Key string
	// Source is the document path the directive was declared in.
	Source string
	// Line is the directive line number within Source.
	Line int
	// Description is the free-text body preceding the property field lines.
	Description string
	// Properties holds property declarations in declaration order.
	Properties []PropertySpec
	// NoIndex excludes the object from the contents index.
	NoIndex bool
	// Example selects the example payload notation; none disables the block.
	Example ExampleFormat
}

// Property returns the property declaration with the given name.
func (shape *ObjectShape) Property(name string) (*PropertySpec, bool) {
	for index := range shape.Properties {
		if shape.Properties[index].Name == name {
			return &shape.Properties[index], true
		}
	}

	return nil, false
}

// PropertySpec is one declared property of an ObjectShape.
type PropertySpec struct {
	// Name is the property key in the documented JSON object.
	Name string
	// Type is the declared type; the zero value means unspecified.
	Type TypeRef
	// Optional marks the property as not required.
	Optional bool
	// Options carries raw option tokens from the options field line.
	Options []string
	// Description is the free-text property description.
	Description string
	// Example is a literal example override decoded from JSON; nil means absent.
	Example *ExampleLiteral
}

// ExampleLiteral wraps a decoded literal example value so that a declared
// JSON null stays distinguishable from an absent override.
type ExampleLiteral struct {
	Value any
}

// TypeRef is a declared property type token.
//
// The token is not classified at parse time: at generation and render time it
// resolves against the registry first, then against the primitive kind table,
// and degrades to an unknown placeholder otherwise. This keeps forward
// references to later-declared objects working.
type TypeRef struct {
	// Name is the bare type token with array brackets stripped.
	Name string
	// Array marks an array-of-type declaration, written as "[token]".
	Array bool
}

// IsZero reports whether no type token was declared.
func (ref TypeRef) IsZero() bool {
	return ref.Name == "" && !ref.Array
}

// String renders the declared token back into its source notation.
func (ref TypeRef) String() string {
	if ref.Array {
		return "[" + ref.Name + "]"
	}

	return ref.Name
}

// parseTypeRef reads a type token, unwrapping one level of array brackets.
func parseTypeRef(token string) TypeRef {
	token = strings.TrimSpace(token)
	if strings.HasPrefix(token, "[") && strings.HasSuffix(token, "]") {
		return TypeRef{
			Name:  strings.TrimSpace(token[1 : len(token)-1]),
			Array: true,
		}
	}

	return TypeRef{Name: token}
}

const (
	KindString   PrimitiveKind = "string"
	KindInteger  PrimitiveKind = "integer"
	KindFloat    PrimitiveKind = "float"
	KindBoolean  PrimitiveKind = "boolean"
	KindNull     PrimitiveKind = "null"
	KindEmail    PrimitiveKind = "email"
	KindURI      PrimitiveKind = "uri"
	KindISO8601  PrimitiveKind = "iso8601"
	KindUUID4    PrimitiveKind = "uuid4"
	KindMD5      PrimitiveKind = "md5"
	KindSHA1     PrimitiveKind = "sha1"
	KindSHA256   PrimitiveKind = "sha256"
	KindUserName PrimitiveKind = "user_name"
	// KindUnknown marks a type token that is neither a registered object nor
	// a recognized primitive.
	KindUnknown PrimitiveKind = ""
)

// PrimitiveKind identifies one built-in scalar type.
type PrimitiveKind string

// primitiveAliases maps alternate type spellings to canonical kinds.
var primitiveAliases = map[string]PrimitiveKind{
	"str":       KindString,
	"int":       KindInteger,
	"number":    KindFloat,
	"bool":      KindBoolean,
	"url":       KindURI,
	"timestamp": KindISO8601,
	"username":  KindUserName,
}

// primitiveKinds enumerates canonical kinds for direct token matching.
var primitiveKinds = map[PrimitiveKind]struct{}{
	KindString:   {},
	KindInteger:  {},
	KindFloat:    {},
	KindBoolean:  {},
	KindNull:     {},
	KindEmail:    {},
	KindURI:      {},
	KindISO8601:  {},
	KindUUID4:    {},
	KindMD5:      {},
	KindSHA1:     {},
	KindSHA256:   {},
	KindUserName: {},
}

// primitiveKind resolves a type token into a canonical primitive kind.
func primitiveKind(token string) PrimitiveKind {
	token = strings.ToLower(strings.TrimSpace(token))
	if kind, ok := primitiveAliases[token]; ok {
		return kind
	}

	kind := PrimitiveKind(token)
	if _, ok := primitiveKinds[kind]; ok {
		return kind
	}

	return KindUnknown
}

// typeLink is one external reference target for a primitive type link.
type typeLink struct {
	URL     string
	Tooltip string
}

// primitiveLinks maps each primitive kind to its specification link.
var primitiveLinks = map[PrimitiveKind]typeLink{
	KindString:   {"https://www.rfc-editor.org/rfc/rfc8259#section-7", "JSON string"},
	KindInteger:  {"https://www.rfc-editor.org/rfc/rfc8259#section-6", "JSON integer number"},
	KindFloat:    {"https://www.rfc-editor.org/rfc/rfc8259#section-6", "JSON number"},
	KindBoolean:  {"https://www.rfc-editor.org/rfc/rfc8259#section-3", "JSON boolean"},
	KindNull:     {"https://www.rfc-editor.org/rfc/rfc8259#section-3", "JSON null"},
	KindEmail:    {"https://www.rfc-editor.org/rfc/rfc2822#section-3.4.1", "Email address"},
	KindURI:      {"https://www.rfc-editor.org/rfc/rfc3986", "URI as described in RFC3986"},
	KindISO8601:  {"https://www.rfc-editor.org/rfc/rfc3339#section-5.6", "ISO8601 date/time"},
	KindUUID4:    {"https://www.rfc-editor.org/rfc/rfc4122#section-4.4", "UUIDv4 in canonical syntax"},
	KindMD5:      {"https://www.rfc-editor.org/rfc/rfc1321", "MD5 checksum"},
	KindSHA1:     {"https://www.rfc-editor.org/rfc/rfc3174", "SHA1 checksum"},
	KindSHA256:   {"https://www.rfc-editor.org/rfc/rfc6234", "SHA256 checksum"},
	KindUserName: {"https://www.rfc-editor.org/rfc/rfc8259#section-7", "Username string"},
}

// primitiveLink returns the specification link for one primitive kind.
func primitiveLink(kind PrimitiveKind) (typeLink, bool) {
	link, ok := primitiveLinks[kind]
	return link, ok
}

// normalizeObjectName adjusts object names into stable registry keys: runs of
// whitespace become single dashes, surrounding dashes are trimmed, and the
// result is lowercased.
func normalizeObjectName(name string) string {
	fields := strings.Fields(name)
	return strings.Trim(strings.ToLower(strings.Join(fields, "-")), "-")
}
