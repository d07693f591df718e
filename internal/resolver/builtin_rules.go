package resolver

// DefaultRules returns built-in rules in priority order.
func DefaultRules() []Rule {
	return []Rule{
		&BoolRule{},
		&AliasRule{},
	}
}

// BoolRule: Go bool -> boolean. Runs before alias lookup, so a `bool` alias key never wins.
type BoolRule struct{}

func (r *BoolRule) Name() string { return "bool" }

func (r *BoolRule) Try(typ string, _ AliasTable) (string, bool) {
	if typ == "bool" {
		return "boolean", true
	}
	return "", false
}

// AliasRule: one-step lookup in the alias table. The result is not resolved again.
type AliasRule struct{}

func (r *AliasRule) Name() string { return "alias" }

func (r *AliasRule) Try(typ string, aliases AliasTable) (string, bool) {
	return aliases.Lookup(typ)
}
