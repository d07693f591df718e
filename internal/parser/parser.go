package parser

import (
	"strings"

	"github.com/seitarof/gs2tc/internal/matcher"
	"github.com/seitarof/gs2tc/internal/resolver"
)

// structMarker must appear somewhere in the text for it to be treated as Go struct source.
const structMarker = " struct {"

// Parser extracts struct definitions from gofmt-formatted Go source text.
type Parser interface {
	Scan(text string) []StructDef
}

type parserImpl struct {
	headers  matcher.HeaderMatcher
	fields   matcher.FieldMatcher
	resolver resolver.Resolver
}

// New returns default parser.
func New(r resolver.Resolver) Parser {
	return &parserImpl{
		headers:  matcher.NewHeaderMatcher(),
		fields:   matcher.NewFieldMatcher(),
		resolver: r,
	}
}

// Scan runs alias discovery over every line, then struct extraction.
// It returns nil when text does not look like Go struct source.
func (p *parserImpl) Scan(text string) []StructDef {
	if text == "" || !strings.Contains(text, structMarker) {
		return nil
	}
	lines := SplitLines(text)
	aliases := collectAliases(lines, p.headers)
	return extractStructs(lines, aliases, p.headers, p.fields, p.resolver)
}

// SplitLines splits text on '\n'. Lines keep surrounding whitespace.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// CollectAliases records every `type X Y` declaration whose Y is not struct.
func CollectAliases(lines []string) AliasTable {
	return collectAliases(lines, matcher.NewHeaderMatcher())
}

// ExtractStructs builds struct definitions using aliases for field type resolution.
func ExtractStructs(lines []string, aliases AliasTable, r resolver.Resolver) []StructDef {
	return extractStructs(lines, aliases, matcher.NewHeaderMatcher(), matcher.NewFieldMatcher(), r)
}

func collectAliases(lines []string, headers matcher.HeaderMatcher) AliasTable {
	aliases := AliasTable{}
	for _, raw := range lines {
		line, ok := significantLine(raw)
		if !ok {
			continue
		}
		h, ok := headers.MatchHeader(line)
		if !ok || h.IsStruct() {
			continue
		}
		aliases[h.Name] = h.Type
	}
	return aliases
}

type scanState int

const (
	stateOutside scanState = iota
	stateInsideStruct
)

func extractStructs(
	lines []string,
	aliases AliasTable,
	headers matcher.HeaderMatcher,
	fields matcher.FieldMatcher,
	r resolver.Resolver,
) []StructDef {
	var defs []StructDef
	state := stateOutside
	var working StructDef

	for _, raw := range lines {
		line, ok := significantLine(raw)
		if !ok {
			continue
		}

		// A header always starts a new working definition, dropping an unterminated one.
		if h, ok := headers.MatchHeader(line); ok {
			working = StructDef{Name: h.Name}
			state = stateInsideStruct
			continue
		}

		if state != stateInsideStruct {
			continue
		}

		if line == "}" {
			defs = append(defs, working)
			working = StructDef{}
			state = stateOutside
			continue
		}

		f, ok := fields.MatchField(line)
		if !ok {
			continue
		}
		def := buildField(f, aliases, r)
		if def.JSONName == "-" {
			continue
		}
		working.Fields = append(working.Fields, def)
	}
	return defs
}

func buildField(f matcher.Field, aliases AliasTable, r resolver.Resolver) FieldDef {
	jsonName := f.Name
	if name, ok := matcher.JSONTagName(f.Tag); ok {
		jsonName = name
	}

	typ := f.Type
	if r != nil {
		typ = r.Resolve(typ, aliases)
	}

	return FieldDef{
		Name:     f.Name,
		Type:     typ,
		JSONName: jsonName,
	}
}

// significantLine trims raw and reports whether it should be scanned.
// Blank lines and lines starting with '/' are skipped.
func significantLine(raw string) (string, bool) {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "/") {
		return "", false
	}
	return line, true
}
