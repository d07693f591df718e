package resolver

// AliasTable maps a declared type name to the type it was declared as,
// e.g. `type ID string` stores "ID" -> "string".
type AliasTable map[string]string

// Lookup returns the aliased type for name.
func (t AliasTable) Lookup(name string) (string, bool) {
	if t == nil {
		return "", false
	}
	v, ok := t[name]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
