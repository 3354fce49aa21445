// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsondoc

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fixturePath = "testdata/api.rst"

func TestRenderFromFile(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code := run([]string{"render", fixturePath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}

	out := stdout.String()
	assertContains(t, out, "# JSON object reference")
	assertContains(t, out, "## Launch Site")
	assertContains(t, out, "## Mailing Address")
	assertContains(t, out, "```json")
	assertContains(t, out, `"city": "New York"`)
}

func TestRenderFromStdin(t *testing.T) {
	t.Parallel()

	source, err := os.ReadFile(fixturePath)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := runWithIO([]string{"render"}, bytes.NewReader(source), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "## Launch Site")
}

func TestRenderEmptyStdinFails(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code := runWithIO([]string{"render"}, strings.NewReader("  \n"), &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}

	assertContains(t, stderr.String(), "empty input")
}

func TestRenderMissingInputFileFails(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code := run([]string{"render", filepath.Join(t.TempDir(), "missing.rst")}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}

	if stderr.Len() == 0 {
		t.Fatal("missing input must report an error")
	}
}

func TestRenderToOutputFile(t *testing.T) {
	t.Parallel()

	outputPath := filepath.Join(t.TempDir(), "reference.md")

	var stdout, stderr bytes.Buffer
	code := run([]string{"render", "-o", outputPath, fixturePath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}

	if stdout.Len() != 0 {
		t.Errorf("stdout must stay empty when writing a file, got: %s", stdout.String())
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	assertContains(t, string(data), "## Launch Site")
}

func TestRenderTableTemplate(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code := run([]string{"render", "-t", "table", fixturePath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "| Attribute | Value |")
}

func TestRenderCustomTemplateFile(t *testing.T) {
	t.Parallel()

	templatePath := filepath.Join(t.TempDir(), "custom.gotmpl")
	templateText := "{{ range .Objects }}object={{ .Name }}\n{{ end }}"
	if err := os.WriteFile(templatePath, []byte(templateText), 0o600); err != nil {
		t.Fatalf("write template: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{"render", "--template-file", templatePath, fixturePath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "object=Launch Site")
	assertContains(t, stdout.String(), "object=Mailing Address")
}

func TestRenderTitleFlag(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code := run([]string{"render", "-T", "Rocket API", fixturePath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "# Rocket API")
}

func TestExampleJSON(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code := run([]string{"example", "Mailing Address", fixturePath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}

	out := stdout.String()
	assertContains(t, out, `"street"`)
	assertContains(t, out, `"city": "New York"`)
}

func TestExampleYAML(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code := run([]string{"example", "-f", "yaml", "Mailing Address", fixturePath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "city: New York")
}

func TestExampleUnknownObjectFails(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code := run([]string{"example", "Nowhere", fixturePath}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}

	assertContains(t, stderr.String(), "Nowhere")
}

func TestExampleSameSeedIsStable(t *testing.T) {
	t.Parallel()

	var first, second, stderr bytes.Buffer
	if code := run([]string{"example", "-s", "42", "Launch Site", fixturePath}, &first, &stderr); code != 0 {
		t.Fatalf("first run exit code = %d", code)
	}

	if code := run([]string{"example", "-s", "42", "Launch Site", fixturePath}, &second, &stderr); code != 0 {
		t.Fatalf("second run exit code = %d", code)
	}

	if first.String() != second.String() {
		t.Errorf("same seed produced different payloads:\n%s\n%s", first.String(), second.String())
	}
}

func TestTemplateCommand(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code := run([]string{"template"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "{{ .Title }}")
}

func TestTemplateCommandWritesFile(t *testing.T) {
	t.Parallel()

	outputPath := filepath.Join(t.TempDir(), "table.gotmpl")

	var stdout, stderr bytes.Buffer
	code := run([]string{"template", "-t", "table", outputPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	assertContains(t, string(data), "| Attribute | Value |")
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	if code := run([]string{"version"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
}

func TestHelpExitsZero(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	if code := run([]string{"--help"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "render")
}

func TestUnknownCommandExitsTwo(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	if code := run([]string{"frobnicate"}, &stdout, &stderr); code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}

	if stderr.Len() == 0 {
		t.Fatal("unknown command must report an error")
	}
}

func TestInvalidFlagChoiceExitsTwo(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	if code := run([]string{"example", "-f", "toml", "Mailing Address", fixturePath}, &stdout, &stderr); code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}
}

// assertContains fails the test when text does not contain the needle.
func assertContains(t *testing.T, text, needle string) {
	t.Helper()

	if !strings.Contains(text, needle) {
		t.Fatalf("output does not contain %q:\n%s", needle, text)
	}
}
