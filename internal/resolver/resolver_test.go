package resolver

import "testing"

func TestResolver_BoolBecomesBoolean(t *testing.T) {
	r := New(DefaultRules()...)

	if got := r.Resolve("bool", nil); got != "boolean" {
		t.Fatalf("Resolve(bool) = %q, want boolean", got)
	}
}

func TestResolver_BoolWinsOverAlias(t *testing.T) {
	r := New(DefaultRules()...)
	aliases := AliasTable{"bool": "int"}

	if got := r.Resolve("bool", aliases); got != "boolean" {
		t.Fatalf("Resolve(bool) = %q, want boolean", got)
	}
}

func TestResolver_AliasLookup(t *testing.T) {
	r := New(DefaultRules()...)
	aliases := AliasTable{"ID": "string", "Flag": "bool", "Outer": "ID"}

	tests := []struct {
		typ  string
		want string
	}{
		{typ: "ID", want: "string"},
		// alias results are not passed through the chain again
		{typ: "Flag", want: "bool"},
		{typ: "Outer", want: "ID"},
		{typ: "int", want: "int"},
		{typ: "time.Time", want: "time.Time"},
	}
	for _, tc := range tests {
		if got := r.Resolve(tc.typ, aliases); got != tc.want {
			t.Fatalf("Resolve(%q) = %q, want %q", tc.typ, got, tc.want)
		}
	}
}

func TestResolver_NoRulesIsIdentity(t *testing.T) {
	r := New()

	if got := r.Resolve("bool", AliasTable{"bool": "x"}); got != "bool" {
		t.Fatalf("Resolve(bool) = %q, want bool", got)
	}
}

func TestResolver_RuleOrder(t *testing.T) {
	r := New(&AliasRule{}, &BoolRule{})

	if got := r.Resolve("bool", AliasTable{"bool": "int"}); got != "int" {
		t.Fatalf("Resolve(bool) = %q, want int when alias rule runs first", got)
	}
}

func TestAliasTable_Lookup(t *testing.T) {
	var nilTable AliasTable
	if _, ok := nilTable.Lookup("ID"); ok {
		t.Fatal("nil table should not resolve")
	}

	table := AliasTable{"ID": "string", "Empty": ""}
	if v, ok := table.Lookup("ID"); !ok || v != "string" {
		t.Fatalf("Lookup(ID) = (%q, %v)", v, ok)
	}
	if _, ok := table.Lookup("Empty"); ok {
		t.Fatal("empty alias value should not resolve")
	}
}

func TestDefaultRules_Names(t *testing.T) {
	rules := DefaultRules()
	want := []string{"bool", "alias"}
	if len(rules) != len(want) {
		t.Fatalf("rules = %d, want %d", len(rules), len(want))
	}
	for i, rule := range rules {
		if rule.Name() != want[i] {
			t.Fatalf("rule[%d] = %s, want %s", i, rule.Name(), want[i])
		}
	}
}
