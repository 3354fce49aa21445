// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsondoc

package jsondoc

import "errors"

var (
	// ErrReadSourceFile is returned when document source loading fails.
	ErrReadSourceFile = errors.New("read source file")
	// ErrObjectName is returned when a directive declares no object name.
	ErrObjectName = errors.New("missing object name")
	// ErrDuplicateObject is returned when an object name is declared twice in one build.
	ErrDuplicateObject = errors.New("object already documented")
	// ErrObjectNotFound is returned when a requested object is not registered.
	ErrObjectNotFound = errors.New("object not documented")
	// ErrDuplicateProperty is returned when a directive declares a property twice.
	ErrDuplicateProperty = errors.New("property already declared")
	// ErrUnknownProperty is returned when an option line targets an undeclared property.
	ErrUnknownProperty = errors.New("property not declared")
	// ErrFieldSyntax is returned when a directive field line cannot be parsed.
	ErrFieldSyntax = errors.New("malformed field line")
	// ErrExampleLiteral is returned when a literal example override is not valid JSON.
	ErrExampleLiteral = errors.New("decode example literal")
	// ErrUnknownOption is returned when a directive option is not supported.
	ErrUnknownOption = errors.New("unknown directive option")
	// ErrUnknownExampleFormat is returned when example notation is not supported.
	ErrUnknownExampleFormat = errors.New("unknown example format")
	// ErrEncodeExampleJSON is returned when generated example JSON encoding fails.
	ErrEncodeExampleJSON = errors.New("encode example json")
	// ErrEncodeExampleYAML is returned when generated example YAML encoding fails.
	ErrEncodeExampleYAML = errors.New("encode example yaml")
	// ErrExecuteMarkdownTemplate is returned when markdown template execution fails.
	ErrExecuteMarkdownTemplate = errors.New("execute markdown template")
	// ErrUnknownBuiltinTemplate is returned when requested built-in template name is not registered.
	ErrUnknownBuiltinTemplate = errors.New("unknown built-in template")
	// ErrReadBuiltinTemplate is returned when built-in template file loading fails.
	ErrReadBuiltinTemplate = errors.New("read built-in template")
	// ErrParseBuiltinTemplate is returned when built-in template parsing fails.
	ErrParseBuiltinTemplate = errors.New("parse built-in template")
)
