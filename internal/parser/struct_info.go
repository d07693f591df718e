package parser

import "github.com/seitarof/gs2tc/internal/resolver"

// AliasTable maps alias names to their underlying Go type name. Built by
// CollectAliases for a single scan and never shared between scans.
type AliasTable = resolver.AliasTable

// StructDef is one struct recognized between its type header and closing brace.
type StructDef struct {
	Name   string
	Fields []FieldDef
}

// FieldDef is one emitted struct field.
type FieldDef struct {
	// Name is the Go field identifier.
	Name string

	// Type is the output type after bool mapping or alias resolution.
	Type string

	// JSONName is the json tag name, possibly empty, or Name when there is no json tag.
	JSONName string
}
