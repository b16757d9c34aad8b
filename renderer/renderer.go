// Package renderer turns fpl results into markdown reports.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			content, err = fs.ReadFile(templates, "templates/"+file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

// Artifact is a file produced alongside a report.
type Artifact struct {
	Label string
	Path  string
}

// ArtifactsMarkdown lists the produced files, or says none were.
func ArtifactsMarkdown(artifacts []Artifact) string {
	var b strings.Builder
	if len(artifacts) == 0 {
		fmt.Fprintln(&b, "시각화 결과 파일: (생성되지 않음)")
		return b.String()
	}
	fmt.Fprint(&b, "시각화 결과 파일:\n\n")
	for _, a := range artifacts {
		fmt.Fprintf(&b, "- %s: `%s`\n", a.Label, a.Path)
	}
	return b.String()
}
