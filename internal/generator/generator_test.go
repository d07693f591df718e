package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/seitarof/gs2tc/internal/parser"
	"github.com/seitarof/gs2tc/internal/resolver"
)

func TestGenerate_SingleClass(t *testing.T) {
	defs := []parser.StructDef{{
		Name: "Foo",
		Fields: []parser.FieldDef{
			{Name: "Name", Type: "string", JSONName: "name"},
			{Name: "Age", Type: "int", JSONName: "age"},
			{Name: "Ok", Type: "boolean", JSONName: "ok"},
		},
	}}

	got, err := New().Generate(defs)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	want := "class Foo {\n\tname: string\n\tage: int\n\tok: boolean\n}\n"
	if got != want {
		t.Fatalf("Generate() = %q, want %q", got, want)
	}
}

func TestGenerate_BlankLineBetweenClasses(t *testing.T) {
	defs := []parser.StructDef{
		{Name: "A", Fields: []parser.FieldDef{{Name: "X", Type: "int", JSONName: "x"}}},
		{Name: "B"},
	}

	got, err := New().Generate(defs)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	want := "class A {\n\tx: int\n}\n\nclass B {\n}\n"
	if got != want {
		t.Fatalf("Generate() = %q, want %q", got, want)
	}
}

func TestGenerate_NoDefinitions(t *testing.T) {
	if _, err := New().Generate(nil); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestGenerate_Fixtures(t *testing.T) {
	p := parser.New(resolver.New(resolver.DefaultRules()...))
	g := New()

	for _, name := range []string{"foo", "account"} {
		name := name
		t.Run(name, func(t *testing.T) {
			in, err := os.ReadFile(filepath.Join("..", "..", "testdata", "clipboard", name+".txt"))
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}
			want, err := os.ReadFile(filepath.Join("..", "..", "testdata", "clipboard", name+".ts"))
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}

			got, err := g.Generate(p.Scan(string(in)))
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if got != string(want) {
				t.Fatalf("Generate() mismatch\n--- got\n%s\n--- want\n%s", got, want)
			}
		})
	}
}
