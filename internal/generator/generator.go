package generator

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/seitarof/gs2tc/internal/parser"
)

//go:embed templates/*.ts.tmpl
var templateFS embed.FS

// blockSeparator goes between rendered class blocks.
const blockSeparator = "\n"

// Generator renders class declarations from struct definitions.
type Generator interface {
	Generate(defs []parser.StructDef) (string, error)
}

type generatorImpl struct {
	tmpl *template.Template
}

// New creates a class generator.
func New() Generator {
	tmpl := template.Must(template.New("").ParseFS(templateFS, "templates/*.ts.tmpl"))
	return &generatorImpl{tmpl: tmpl}
}

func (g *generatorImpl) Generate(defs []parser.StructDef) (string, error) {
	if len(defs) == 0 {
		return "", fmt.Errorf("no struct definitions")
	}

	blocks := make([]string, 0, len(defs))
	var buf bytes.Buffer
	for _, def := range defs {
		buf.Reset()
		if err := g.tmpl.ExecuteTemplate(&buf, "class.ts.tmpl", def); err != nil {
			return "", fmt.Errorf("template %s: %w", def.Name, err)
		}
		blocks = append(blocks, buf.String())
	}
	return strings.Join(blocks, blockSeparator), nil
}
