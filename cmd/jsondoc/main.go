// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsondoc

// jsondoc generates CommonMark docs from json:object declarations.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/jsondoc"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/jsondoc"
	_buildTime string
)

// cliOptions describes jsondoc CLI flags and subcommands.
type cliOptions struct {
	Version  versionCommand  `command:"version" description:"Print version information"`
	Template templateCommand `command:"template" description:"Print built-in markdown template"`
	Render   renderCommand   `command:"render" description:"Render json:object declarations to markdown"`
	Example  exampleCommand  `command:"example" description:"Generate example payload for one documented object"`
}

// markdownRenderFlags groups markdown rendering flags.
type markdownRenderFlags struct {
	Title      string `short:"T" long:"title" description:"Markdown document title" default:"JSON object reference"`
	ListMarker string `short:"l" long:"list-marker" description:"Unordered list marker" choice:"-" choice:"*" default:"*"`
	WrapWidth  int    `short:"w" long:"wrap" description:"Wrap width for plain text descriptions" default:"80"`
	Seed       uint64 `short:"s" long:"seed" description:"Example synthesizer seed (0 uses the build default)"`
}

// templateSelectFlags groups built-in template selection flags.
type templateSelectFlags struct {
	TemplateName string `short:"t" long:"template" description:"Built-in template style" choice:"list" choice:"table" default:"list"`
	TemplatePath string `short:"f" long:"template-file" description:"Path to custom markdown template (.gotmpl)"`
}

// renderCommand converts structured-text sources to markdown.
type renderCommand struct {
	runner *cliRunner
	Args   struct {
		Inputs []string `positional-arg-name:"input" description:"Input document paths (stdin when omitted)"`
	} `positional-args:"yes"`

	Output string `short:"o" long:"output" description:"Output markdown file path (stdout when omitted)"`

	TemplateFlags templateSelectFlags `group:"Template Select"`
	RenderFlags   markdownRenderFlags `group:"Markdown Render"`
}

// Execute runs render subcommand.
func (command *renderCommand) Execute(_ []string) error {
	return command.runner.runRender(
		command.Args.Inputs,
		command.Output,
		command.TemplateFlags,
		command.RenderFlags,
	)
}

// exampleCommand prints one object's generated example payload.
type exampleCommand struct {
	runner *cliRunner
	Args   struct {
		Object string   `positional-arg-name:"object" description:"Documented object name" required:"yes"`
		Inputs []string `positional-arg-name:"input" description:"Input document paths (stdin when omitted)"`
	} `positional-args:"yes"`

	Format string `short:"f" long:"format" description:"Example payload notation" choice:"json" choice:"yaml" default:"json"`
	Seed   uint64 `short:"s" long:"seed" description:"Example synthesizer seed (0 uses the build default)"`
}

// Execute runs example subcommand.
func (command *exampleCommand) Execute(_ []string) error {
	return command.runner.runExample(
		command.Args.Object,
		command.Args.Inputs,
		jsondoc.ExampleFormat(command.Format),
		command.Seed,
	)
}

// templateCommand exports built-in markdown template.
type templateCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output template file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	TemplateName string `short:"t" long:"template" description:"Built-in template style" choice:"list" choice:"table" default:"list"`
}

// Execute runs template subcommand.
func (command *templateCommand) Execute(_ []string) error {
	return command.runner.runTemplate(command.TemplateName, command.Args.Output)
}

// versionCommand prints version information.
type versionCommand struct {
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	printVersionInfo()
	return nil
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	programName string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "jsondoc"
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// runRender executes the render flow and writes markdown to stdout or file.
func (runner *cliRunner) runRender(inputs []string, outputPath string, templateFlags templateSelectFlags, renderFlags markdownRenderFlags) error {
	options := jsondoc.Options{
		Title:        renderFlags.Title,
		TemplateName: templateFlags.TemplateName,
		WrapWidth:    renderFlags.WrapWidth,
		ListMarker:   renderFlags.ListMarker,
		ExampleSeed:  renderFlags.Seed,
	}

	if templateFlags.TemplatePath != "" {
		customTemplate, err := os.ReadFile(templateFlags.TemplatePath)
		if err != nil {
			return fmt.Errorf("read template file %q: %w", templateFlags.TemplatePath, err)
		}

		options.TemplateText = string(customTemplate)
	}

	build := jsondoc.NewBuild(options)
	if err := runner.addInputs(build, inputs); err != nil {
		return err
	}

	rendered, err := build.Render()
	runner.writeWarnings(build.Warnings())
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	return runner.writeOutput(outputPath, rendered, "markdown")
}

// runExample executes the example flow and writes the payload to stdout.
func (runner *cliRunner) runExample(object string, inputs []string, format jsondoc.ExampleFormat, seed uint64) error {
	build := jsondoc.NewBuild(jsondoc.Options{ExampleSeed: seed})
	if err := runner.addInputs(build, inputs); err != nil {
		return err
	}

	payload, err := build.Example(object, format)
	runner.writeWarnings(build.Warnings())
	if err != nil {
		return fmt.Errorf("generate example: %w", err)
	}

	if _, err := runner.stdout.Write(payload); err != nil {
		return fmt.Errorf("write example to stdout: %w", err)
	}

	return nil
}

// runTemplate writes selected built-in template to stdout or file.
func (runner *cliRunner) runTemplate(templateName, outputPath string) error {
	tpl, err := jsondoc.BuiltinTemplate(templateName)
	if err != nil {
		return fmt.Errorf("load built-in template %q: %w", templateName, err)
	}

	return runner.writeOutput(outputPath, tpl, "template")
}

// addInputs parses input documents from file paths or stdin into the build.
func (runner *cliRunner) addInputs(build *jsondoc.Build, inputs []string) error {
	if len(inputs) == 0 {
		data, err := io.ReadAll(runner.stdin)
		if err != nil {
			return fmt.Errorf("read document from stdin: %w", err)
		}

		if len(strings.TrimSpace(string(data))) == 0 {
			return errors.New("read document from stdin: empty input")
		}

		build.AddSource("(stdin)", string(data))
		return nil
	}

	for _, input := range inputs {
		if err := build.AddSourceFile(input); err != nil {
			return err
		}
	}

	return nil
}

// writeWarnings prints collected build diagnostics to the error stream.
func (runner *cliRunner) writeWarnings(warnings []jsondoc.Warning) {
	for _, warning := range warnings {
		_, _ = fmt.Fprintln(runner.stderr, "warning:", warning.String())
	}
}

// writeOutput writes rendered text to stdout or file.
func (runner *cliRunner) writeOutput(outputPath, text, kind string) error {
	if strings.TrimSpace(outputPath) == "" {
		if _, err := io.WriteString(runner.stdout, text); err != nil {
			return fmt.Errorf("write %s to stdout: %w", kind, err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, []byte(text), 0o600); err != nil {
		return fmt.Errorf("write %s file %q: %w", kind, outputPath, err)
	}

	return nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Render.runner = runner
	options.Example.runner = runner
	options.Template.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"render": strings.TrimSpace(fmt.Sprintf(`
Render json:object declarations from structured-text documents to markdown.
Reads documents from file arguments or stdin; writes markdown to --output or stdout.
Objects may reference each other across documents in any order.

Examples:
> $ %s render api.rst models.rst > reference.md
> $ cat api.rst | %s render -t table -o reference.md
`, programName, programName)),
		"example": strings.TrimSpace(fmt.Sprintf(`
Generate the example payload for one documented object.
Reads documents from file arguments or stdin; writes the payload to stdout.

Examples:
> $ %s example "Launch Site" api.rst
> $ cat api.rst | %s example -f yaml "Launch Site"
`, programName, programName)),
		"template": strings.TrimSpace(fmt.Sprintf(`
Print built-in markdown template text (`+"`list` or `table`"+`).
Use it as a starting point for a custom template file.

Examples:
> $ %s template > list.gotmpl
> $ %s template -t table templates/table.gotmpl
`, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func printVersionInfo() {
	fmt.Printf(`url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
