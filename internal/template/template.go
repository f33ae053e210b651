package template

import (
	"fmt"
	htmltemplate "html/template"
	"maps"
	"os"
	"strings"
	"time"
)

// Template wraps an html/template with the digest's default function
// map. Load reads a user-supplied template file; Parse takes the
// embedded default.
type Template struct {
	htmlTmpl *htmltemplate.Template
}

func (t *Template) Load(path string, customFuncs htmltemplate.FuncMap) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read template file %s: %w", path, err)
	}
	return t.Parse(string(data), customFuncs)
}

func (t *Template) Parse(src string, customFuncs htmltemplate.FuncMap) error {
	defaultFuncs := htmltemplate.FuncMap{
		"truncate": truncate,
		"datefmt":  datefmt,
		"add":      func(a, b int) int { return a + b },
	}

	if customFuncs != nil {
		maps.Copy(defaultFuncs, customFuncs)
	}

	tmpl, err := htmltemplate.New("template").Funcs(defaultFuncs).Parse(src)
	if err != nil {
		return fmt.Errorf("failed to parse HTML template: %w", err)
	}
	t.htmlTmpl = tmpl
	return nil
}

func (t *Template) HTMLTemplate() *htmltemplate.Template {
	return t.htmlTmpl
}

func truncate(n int, s string) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return strings.TrimSpace(string(runes[:n-3])) + "..."
}

func datefmt(ts time.Time) string {
	if ts.IsZero() {
		return "undated"
	}
	return ts.Format("2006-01-02 15:04")
}
