package render

import (
	"bytes"
	_ "embed"
	"log/slog"
	"os"
	"time"

	"gaizette/internal/digest"
	"gaizette/internal/template"
	"gaizette/internal/types"
)

//go:embed digest.tmpl
var defaultTemplate string

// Renderer writes the digest as a single self-contained HTML page,
// overwriting the output file on each run.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer builds a renderer with the embedded newspaper template,
// or a user template when templatePath is set.
func NewRenderer(templatePath string) (*Renderer, error) {
	tmpl := &template.Template{}
	if templatePath != "" {
		if err := tmpl.Load(templatePath, nil); err != nil {
			return nil, types.NewRenderError(templatePath, err)
		}
	} else {
		if err := tmpl.Parse(defaultTemplate, nil); err != nil {
			return nil, types.NewRenderError("embedded template", err)
		}
	}
	return &Renderer{tmpl: tmpl}, nil
}

type pageData struct {
	Title       string
	GeneratedAt string
	Topics      []string
	Featured    []*types.Article
	Regular     []*types.Article
	Total       int
}

// Render executes the template into memory first, so a template error
// never leaves a half-written file behind.
func (r *Renderer) Render(d *digest.Digest, outputPath string) error {
	data := pageData{
		Title:       d.Title,
		GeneratedAt: d.GeneratedAt.UTC().Format(time.RFC3339),
		Topics:      d.Topics,
		Featured:    d.Featured(),
		Regular:     d.Regular(),
		Total:       len(d.Articles),
	}

	var buf bytes.Buffer
	if err := r.tmpl.HTMLTemplate().Execute(&buf, data); err != nil {
		return types.NewRenderError(outputPath, err)
	}

	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		return types.NewRenderError(outputPath, err)
	}

	slog.Info("digest written", "path", outputPath, "featured", len(data.Featured), "regular", len(data.Regular))
	return nil
}
