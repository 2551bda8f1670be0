package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var multiSpace = regexp.MustCompile(` {2,}`)

// asciiFold strips combining marks so diacritics collapse onto their base
// letters ("Inżynier" -> "Inzynier").
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// CleanPosition normalizes a position title to plain ASCII: diacritics are
// folded, anything still outside ASCII is dropped, and space runs collapse.
func CleanPosition(text string) string {
	folded, _, err := transform.String(asciiFold, text)
	if err != nil {
		folded = text
	}

	var b strings.Builder
	for _, r := range folded {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
		}
	}

	return strings.TrimSpace(multiSpace.ReplaceAllString(b.String(), " "))
}

var spaceStripper = strings.NewReplacer(" ", "", "\u00a0", "")

// stripSpaces removes grouping spaces from a salary number ("15 000" ->
// "15000").
func stripSpaces(s string) string {
	return spaceStripper.Replace(s)
}
