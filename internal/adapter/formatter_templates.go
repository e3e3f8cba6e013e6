package adapter

import (
	"embed"
	"strings"
	"sync"
	"text/template"
)

//go:embed templates/*.tmpl
var formatterTemplateFS embed.FS

var (
	formatterTemplates *template.Template
	formatterOnce      sync.Once
	formatterErr       error
)

func loadFormatterTemplates() (*template.Template, error) {
	formatterOnce.Do(func() {
		funcMap := template.FuncMap{
			"add":  func(a, b int) int { return a + b },
			"join": strings.Join,
		}
		formatterTemplates, formatterErr = template.New("formatter").
			Funcs(funcMap).
			ParseFS(formatterTemplateFS, "templates/*.tmpl")
	})
	return formatterTemplates, formatterErr
}

// executeFormatterTemplate renders a named template with trailing newlines stripped.
func executeFormatterTemplate(name string, data any) (string, error) {
	tmpl, err := loadFormatterTemplates()
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	if err := tmpl.ExecuteTemplate(&builder, name, data); err != nil {
		return "", err
	}

	return strings.TrimRight(builder.String(), "\n"), nil
}
