// grammar.go defines the segment grammar shared by both parsing passes.
//
// A segment is a number followed by an optional label:
//
//	number  = digits sep digits | digits sep | [sep] digits    (sep is "." or ",")
//	label   = any run of characters that are not space, digit, "." or ","
//	segment = number space* label
//
// The whole (trimmed) text must be consumed by 1..N segments separated by
// optional whitespace. The first pass allows three segments; the second pass,
// run after fraction expansion, allows four because expansion can turn one
// segment into two.

package numeric

import (
	"regexp"
	"strings"
)

const (
	numberExpr  = `\d+[.,]\d+|\d+[.,]|[.,]?\d+`
	labelExpr   = `[^\s\d.,]*`
	segmentExpr = `(` + numberExpr + `)\s*(` + labelExpr + `)`
)

// Token is one matched segment.
type Token struct {
	Value string `json:"value"`
	Label string `json:"label,omitempty"`
}

// String returns the token as it would appear in text.
func (t Token) String() string { return t.Value + t.Label }

// Grammar matches text made of a bounded number of segments.
type Grammar struct {
	max int
	re  *regexp.Regexp
}

// NewGrammar compiles a grammar accepting 1..n segments.
func NewGrammar(n int) *Grammar {
	var b strings.Builder
	b.WriteString(`^\s*`)
	b.WriteString(segmentExpr)
	for range n - 1 {
		b.WriteString(`(?:\s*` + segmentExpr + `)?`)
	}
	b.WriteString(`\s*$`)
	return &Grammar{max: n, re: regexp.MustCompile(b.String())}
}

var (
	// rawGrammar is applied before fraction expansion.
	rawGrammar = NewGrammar(3)
	// expandedGrammar is applied after fraction expansion.
	expandedGrammar = NewGrammar(4)
)

// Max returns the maximum number of segments.
func (g *Grammar) Max() int { return g.max }

// Lex splits text into tokens. ok is false when text is not fully consumed by
// the grammar.
func (g *Grammar) Lex(text string) (tokens []Token, ok bool) {
	m := g.re.FindStringSubmatchIndex(text)
	if m == nil {
		return nil, false
	}
	// m[0:2] is the whole match; then (value, label) pairs per segment.
	for i := 2; i+3 < len(m); i += 4 {
		if m[i] < 0 {
			continue
		}
		tokens = append(tokens, Token{
			Value: text[m[i]:m[i+1]],
			Label: text[m[i+2]:m[i+3]],
		})
	}
	return tokens, true
}

// joinTokens renders tokens back into text, one space between segments.
func joinTokens(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
