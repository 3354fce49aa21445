// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsondoc

/*
Package jsondoc renders CommonMark documentation for JSON object schemas
declared in structured-text sources.

Objects are declared with a `.. json:object::` directive carrying an ordered
field list of typed properties. Declarations are collected into a build-scoped
registry, so objects can reference each other by name regardless of
declaration order, and each object can optionally embed a generated example
payload in JSON or YAML notation.

Render a document from text:

	md, warnings, err := jsondoc.Render(sourceText, jsondoc.Options{
		Title:        "API Reference",
		TemplateName: "list",
		WrapWidth:    100,
	})
	if err != nil {
		return err
	}

	for _, warning := range warnings {
		fmt.Fprintln(os.Stderr, "warning:", warning)
	}

	fmt.Println(md)

Render from files with a shared registry:

	md, warnings, err := jsondoc.RenderFiles([]string{"api.rst", "models.rst"}, jsondoc.Options{})
	if err != nil {
		return err
	}

	_ = warnings
	fmt.Println(md)

Drive a build by hand and generate one example payload:

	build := jsondoc.NewBuild(jsondoc.Options{})
	build.AddSource("api.rst", sourceText)

	payload, err := build.Example("Launch Site", jsondoc.ExampleFormatYAML)
	if err != nil {
		return err
	}

	fmt.Println(string(payload))

Use built-in templates:

	names := jsondoc.BuiltinTemplateNames()
	fmt.Println(strings.Join(names, ", "))

	tpl, err := jsondoc.BuiltinTemplate("table")
	if err != nil {
		return err
	}

	fmt.Println(len(tpl) > 0)

Declaration syntax:

	.. json:object:: Launch Site
	   :showexample: yaml

	   Description of a launch site.

	   :property string name: name of the launch site
	   :property address: street address
	   :proptype address: Mailing Address
	   :property [string] tags: asset tags
	   :options tags: optional
	   :example name: "Cape Canaveral"

Anomalies never abort a build: unresolved references, reference cycles and
malformed field lines degrade to placeholder output plus collected warnings.
*/
package jsondoc
