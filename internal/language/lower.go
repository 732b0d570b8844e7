package language

import (
	"unicode"

	"golang.org/x/text/cases"
	xlang "golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// U+0307 COMBINING DOT ABOVE, produced when lowercasing Turkish İ.
var dotAbove = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0307, Hi: 0x0307, Stride: 1}},
}

// Lower lowercases text for matching purposes. Plain Unicode lowercasing
// turns Turkish İ into "i" plus a combining dot, which breaks both
// tokenization and substring matching against ASCII lexicons, so the
// combining dot is stripped: İ and I both become i, while ı and the other
// Turkish letters are preserved.
func Lower(text string) string {
	t := transform.Chain(cases.Lower(xlang.Und), runes.Remove(runes.In(dotAbove)))
	out, _, err := transform.String(t, text)
	if err != nil {
		// The chain cannot fail on valid UTF-8; fall back to the input
		// unchanged rather than dropping text.
		return text
	}
	return out
}
