// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsondoc

package jsondoc

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestScanDocumentExtractsBlocks(t *testing.T) {
	t.Parallel()

	text := `Intro prose outside any directive.

.. json:object:: First

   Body of the first object.

   :property string name: first name

Prose between directives ends the first block.

.. json:object:: Second
   :noindex:

   :property integer count: second count
`

	blocks := scanDocument("doc.rst", text)
	if len(blocks) != 2 {
		t.Fatalf("blocks = %d, want 2", len(blocks))
	}

	first := blocks[0]
	if first.Argument != "First" || first.Line != 3 {
		t.Errorf("first block = %q at line %d", first.Argument, first.Line)
	}

	for _, line := range first.Lines {
		if strings.Contains(line.Text, "Prose between") {
			t.Errorf("block captured unindented prose: %q", line.Text)
		}
	}

	second := blocks[1]
	if second.Argument != "Second" || second.Line != 11 {
		t.Errorf("second block = %q at line %d", second.Argument, second.Line)
	}
}

func TestScanDocumentDedentsContent(t *testing.T) {
	t.Parallel()

	blocks := scanDocument("doc.rst", `
.. json:object:: Indented

      :property string name: deep indent
`)

	if len(blocks) != 1 {
		t.Fatalf("blocks = %d, want 1", len(blocks))
	}

	lines := blocks[0].Lines
	if len(lines) == 0 {
		t.Fatal("block has no content lines")
	}

	last := lines[len(lines)-1]
	if !strings.HasPrefix(last.Text, ":property") {
		t.Errorf("content not dedented: %q", last.Text)
	}

	if last.Number != 4 {
		t.Errorf("content line number = %d, want 4", last.Number)
	}
}

func TestAddSourceFileMissingPath(t *testing.T) {
	t.Parallel()

	build := NewBuild(Options{})
	err := build.AddSourceFile(filepath.Join(t.TempDir(), "missing.rst"))
	if !errors.Is(err, ErrReadSourceFile) {
		t.Fatalf("error = %v, want ErrReadSourceFile", err)
	}
}

func TestBuildExampleJSON(t *testing.T) {
	t.Parallel()

	build := NewBuild(Options{})
	build.AddSource("api.rst", `
.. json:object:: Address

   :property string street: street line
   :property string city: city name
   :example city: "New York"
`)

	payload, err := build.Example("Address", ExampleFormatJSON)
	if err != nil {
		t.Fatalf("Example: %v", err)
	}

	text := string(payload)
	assertContains(t, text, `"street"`)
	assertContains(t, text, `"city": "New York"`)

	if strings.Index(text, "street") > strings.Index(text, "city") {
		t.Errorf("payload reordered properties:\n%s", text)
	}
}

func TestBuildExampleYAML(t *testing.T) {
	t.Parallel()

	build := NewBuild(Options{})
	build.AddSource("api.rst", `
.. json:object:: Address

   :property string city: Name of the city
   :example city: "New York"
`)

	payload, err := build.Example("Address", ExampleFormatYAML)
	if err != nil {
		t.Fatalf("Example: %v", err)
	}

	text := string(payload)
	assertContains(t, text, "city: New York")
	assertContains(t, text, "# Name of the city")
}

func TestBuildExampleUnknownObject(t *testing.T) {
	t.Parallel()

	build := NewBuild(Options{})
	build.AddSource("api.rst", ".. json:object:: Known\n\n   :property string name: a name\n")

	if _, err := build.Example("Unknown", ExampleFormatJSON); !errors.Is(err, ErrObjectNotFound) {
		t.Fatalf("error = %v, want ErrObjectNotFound", err)
	}
}

func TestBuildExampleUnknownFormat(t *testing.T) {
	t.Parallel()

	build := NewBuild(Options{})
	build.AddSource("api.rst", ".. json:object:: Known\n\n   :property string name: a name\n")

	if _, err := build.Example("Known", ExampleFormat("toml")); !errors.Is(err, ErrUnknownExampleFormat) {
		t.Fatalf("error = %v, want ErrUnknownExampleFormat", err)
	}
}

func TestBuildDuplicateAcrossSourcesKeepsFirst(t *testing.T) {
	t.Parallel()

	build := NewBuild(Options{})
	build.AddSource("a.rst", ".. json:object:: Shared\n\n   :property string from_a: first\n")
	build.AddSource("b.rst", ".. json:object:: Shared\n\n   :property string from_b: second\n")

	shape, ok := build.Registry().Lookup("Shared")
	if !ok {
		t.Fatal("Shared not registered")
	}

	if _, ok := shape.Property("from_a"); !ok {
		t.Error("first declaration lost")
	}

	if !warningsContain(build.Warnings(), "already documented") {
		t.Fatalf("missing duplicate warning in %v", build.Warnings())
	}
}

func TestResolveInlineRoles(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	if err := registry.Add(&ObjectShape{Name: "Mailing Address"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	resolved := resolveInlineRoles(registry, "doc.rst", "See :json:object:`Mailing Address` nearby.")
	assertContains(t, resolved, "[Mailing Address](#mailing-address)")

	unresolved := resolveInlineRoles(registry, "doc.rst", "See :json:object:`Missing Thing`.")
	assertContains(t, unresolved, "`Missing Thing`")

	if !warningsContain(registry.Warnings(), "Missing Thing") {
		t.Fatalf("missing unresolved role warning in %v", registry.Warnings())
	}
}
