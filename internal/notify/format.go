package notify

import (
	"strings"
)

const (
	symbolStart = '{'
	symbolEnd   = '}'
)

// Symbol is a template value and the color its span is highlighted with.
type Symbol struct {
	Value string
	Color string
}

// Span marks the bytes of a replaced symbol in the formatted text.
type Span struct {
	Start int
	End   int
	Color string
}

// Format replaces every {key} in template with symbols[key].Value and returns the spans of
// the replacements. Unknown keys are left as written, and replacement stops at a '{' with
// no closing '}'.
func Format(template string, symbols map[string]Symbol) (string, []Span) {
	var (
		b     strings.Builder
		spans []Span
		rest  = template
	)
	b.Grow(len(template))

	for {
		open := strings.IndexByte(rest, symbolStart)
		if open == -1 {
			break
		}
		closing := strings.IndexByte(rest[open+1:], symbolEnd)
		if closing == -1 {
			break
		}
		closing += open + 1

		b.WriteString(rest[:open])

		key := rest[open+1 : closing]
		if sym, ok := symbols[key]; ok {
			start := b.Len()
			b.WriteString(sym.Value)
			spans = append(spans, Span{Start: start, End: b.Len(), Color: sym.Color})
		} else {
			b.WriteString(rest[open : closing+1])
		}
		rest = rest[closing+1:]
	}
	b.WriteString(rest)

	return b.String(), spans
}
