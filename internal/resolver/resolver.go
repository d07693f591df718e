package resolver

// Resolver maps a captured Go field type to its output type name.
type Resolver interface {
	Resolve(typ string, aliases AliasTable) string
}

// Rule tries to rewrite one field type.
type Rule interface {
	Name() string
	Try(typ string, aliases AliasTable) (string, bool)
}

type resolverImpl struct {
	rules []Rule
}

// New builds resolver with rule chain.
func New(rules ...Rule) Resolver {
	return &resolverImpl{rules: rules}
}

// Resolve applies the first matching rule. Types no rule claims are returned unchanged.
func (r *resolverImpl) Resolve(typ string, aliases AliasTable) string {
	for _, rule := range r.rules {
		if out, ok := rule.Try(typ, aliases); ok {
			return out
		}
	}
	return typ
}
