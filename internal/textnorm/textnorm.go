// Package textnorm prepares free text for keyword and pattern matching.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Copy-paste from PDFs and job boards often leaves a UTF-8 no-break space
// decoded as Latin-1, which shows up as "Â" glued to a space.
var mojibake = strings.NewReplacer("Â\u00a0", " ", "Â ", " ")

var lower = cases.Lower(language.Und)

// Normalize lower-cases s, folds every whitespace run (including no-break
// and narrow no-break spaces) into a single space and trims the result.
// Normalized text is for matching only and must never be echoed back.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = mojibake.Replace(s)
	s = norm.NFKC.String(s)
	return strings.Join(strings.Fields(lower.String(s)), " ")
}

// Collapse folds whitespace like Normalize but keeps the original casing.
// It is used for evidence spans that are shown to the user.
func Collapse(s string) string {
	s = mojibake.Replace(s)
	return strings.Join(strings.FieldsFunc(s, isSpace), " ")
}

// Words splits normalized text into word tokens, dropping punctuation.
func Words(s string) []string {
	return strings.FieldsFunc(Normalize(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '%' && r != '$' && r != '&'
	})
}

// PhraseRegexp compiles a case-insensitive alternation of literal phrases.
// Word boundaries are only asserted next to word characters, so phrases such
// as "100% remote" or "$" prefixed amounts still match.
func PhraseRegexp(phrases ...string) *regexp.Regexp {
	parts := make([]string, 0, len(phrases))
	for _, p := range phrases {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		parts = append(parts, boundary(p))
	}
	if len(parts) == 0 {
		// never matches
		return regexp.MustCompile(`[^\s\S]`)
	}
	return regexp.MustCompile(`(?i)(?:` + strings.Join(parts, "|") + `)`)
}

// PhraseSet is a precompiled list of phrases that keeps its list order.
type PhraseSet []phrase

type phrase struct {
	text string
	re   *regexp.Regexp
}

// Compile builds a PhraseSet from literal phrases.
func Compile(phrases ...string) PhraseSet {
	set := make(PhraseSet, 0, len(phrases))
	for _, p := range phrases {
		if strings.TrimSpace(p) == "" {
			continue
		}
		set = append(set, phrase{text: p, re: PhraseRegexp(p)})
	}
	return set
}

// Matches returns the phrases found in text, in list order.
func (s PhraseSet) Matches(text string) []string {
	var found []string
	for _, p := range s {
		if p.re.MatchString(text) {
			found = append(found, p.text)
		}
	}
	return found
}

// Any reports whether at least one phrase is found in text.
func (s PhraseSet) Any(text string) bool {
	for _, p := range s {
		if p.re.MatchString(text) {
			return true
		}
	}
	return false
}

func boundary(p string) string {
	quoted := strings.ReplaceAll(regexp.QuoteMeta(p), " ", `\s+`)
	runes := []rune(p)
	if isWord(runes[0]) {
		quoted = `\b` + quoted
	}
	if isWord(runes[len(runes)-1]) {
		quoted += `\b`
	}
	return quoted
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\u202f' || r == '\u2007'
}
