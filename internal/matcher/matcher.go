package matcher

import (
	"regexp"
	"strings"
)

var (
	headerPattern  = regexp.MustCompile(`type ([a-zA-Z0-9_]+) ([a-zA-Z0-9_]+)`)
	fieldPattern   = regexp.MustCompile("^\\s*([a-zA-Z0-9_]+)\\s+([a-zA-Z0-9_.]+)(?:\\s+(`[^`]+`)?|$)")
	jsonTagPattern = regexp.MustCompile(`json:"([^"]*)"`)

	tagOptions = []string{"string", "omitempty", ","}
)

// Header is a matched `type <Name> <Type>` declaration.
type Header struct {
	Name string
	Type string
}

// IsStruct reports whether the header opens a struct body.
func (h Header) IsStruct() bool {
	return h.Type == "struct"
}

// Field is a matched struct field line.
type Field struct {
	Name string
	Type string
	// Tag is the raw backtick-quoted tag, including the backticks. Empty when absent.
	Tag string
}

// HeaderMatcher recognizes type declaration lines.
type HeaderMatcher interface {
	MatchHeader(line string) (Header, bool)
}

// FieldMatcher recognizes field lines inside a struct body.
type FieldMatcher interface {
	MatchField(line string) (Field, bool)
}

type headerMatcherImpl struct{}

type fieldMatcherImpl struct{}

// NewHeaderMatcher returns default header matcher.
func NewHeaderMatcher() HeaderMatcher {
	return &headerMatcherImpl{}
}

// NewFieldMatcher returns default field matcher.
func NewFieldMatcher() FieldMatcher {
	return &fieldMatcherImpl{}
}

func (m *headerMatcherImpl) MatchHeader(line string) (Header, bool) {
	sub := headerPattern.FindStringSubmatch(line)
	if len(sub) != 3 {
		return Header{}, false
	}
	return Header{
		Name: strings.TrimSpace(sub[1]),
		Type: strings.TrimSpace(sub[2]),
	}, true
}

func (m *fieldMatcherImpl) MatchField(line string) (Field, bool) {
	sub := fieldPattern.FindStringSubmatch(line)
	if len(sub) != 4 {
		return Field{}, false
	}
	return Field{
		Name: strings.TrimSpace(sub[1]),
		Type: sub[2],
		Tag:  sub[3],
	}, true
}

// JSONTagName extracts the serialized name from a raw field tag.
//
// The name is the first comma-separated token of the json value with the first
// "string", then the first "omitempty", then the first "," removed. This also
// eats those substrings when they are part of the name itself
// (`json:"bigstring"` yields "big", `json:"string"` yields "").
func JSONTagName(tag string) (string, bool) {
	if tag == "" {
		return "", false
	}
	sub := jsonTagPattern.FindStringSubmatch(tag)
	if len(sub) != 2 {
		return "", false
	}
	name, _, _ := strings.Cut(sub[1], ",")
	for _, opt := range tagOptions {
		name = strings.Replace(name, opt, "", 1)
	}
	return strings.TrimSpace(name), true
}
