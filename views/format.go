// Package views builds template view-models from catalog and cart state and renders
// them with the embedded html/template set.
package views

import (
	"html/template"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// CartTitleLimit is the number of characters of a title shown in the cart panel.
const CartTitleLimit = 30

// CapitalizeFirst upper-cases the first letter and leaves the rest untouched.
func CapitalizeFirst(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// Truncate shortens s to limit characters followed by "...".
func Truncate(s string, limit int) string {
	if limit < 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "..."
}

// Price formats a catalog price the way upstream sends it ("$109.95", "$22.3", "$7").
func Price(d decimal.Decimal) string {
	return "$" + d.String()
}

// Money formats a computed amount with two decimals.
func Money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// Highlighter wraps every case-insensitive occurrence of a search term in
// <span class="highlight">. The term is compiled once and matched literally.
type Highlighter struct {
	re *regexp.Regexp
}

// NewHighlighter compiles term. A blank term yields a Highlighter that only escapes.
func NewHighlighter(term string) Highlighter {
	term = strings.TrimSpace(term)
	if term == "" {
		return Highlighter{}
	}
	return Highlighter{re: regexp.MustCompile("(?i)" + regexp.QuoteMeta(term))}
}

// Apply HTML-escapes text and marks the matches.
func (h Highlighter) Apply(text string) template.HTML {
	if h.re == nil {
		return template.HTML(template.HTMLEscapeString(text))
	}

	var b strings.Builder
	last := 0
	for _, loc := range h.re.FindAllStringIndex(text, -1) {
		b.WriteString(template.HTMLEscapeString(text[last:loc[0]]))
		b.WriteString(`<span class="highlight">`)
		b.WriteString(template.HTMLEscapeString(text[loc[0]:loc[1]]))
		b.WriteString(`</span>`)
		last = loc[1]
	}
	b.WriteString(template.HTMLEscapeString(text[last:]))
	return template.HTML(b.String())
}
