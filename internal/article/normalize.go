package article

import (
	"strings"
	"unicode"
)

// NormalizeTitle reduces a headline to the key used for clustering and dedup:
// lowercased, punctuation stripped, whitespace runs collapsed to single spaces,
// trimmed. The function is idempotent, so keys can safely be re-normalized.
func NormalizeTitle(title string) string {
	lowered := strings.ToLower(title)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// ExtractEntityName guesses the subject of a headline by taking up to the
// first three capitalized tokens. It is a crude stand-in for real named-entity
// recognition; callers that want better extraction should swap this out rather
// than tune it.
func ExtractEntityName(title string) string {
	var picked []string
	for _, tok := range strings.Fields(title) {
		if len(picked) == 3 {
			break
		}
		if isCapitalizedToken(tok) {
			picked = append(picked, tok)
		}
	}
	if len(picked) == 0 {
		return "Subject"
	}
	return strings.Join(picked, " ")
}

// isCapitalizedToken reports whether the token contains an uppercase letter
// immediately followed by another letter or a hyphen ("Brand", "McDonald's",
// "iPhone" all qualify; "A", "7-Up" do not).
func isCapitalizedToken(tok string) bool {
	runes := []rune(tok)
	for i := 0; i < len(runes)-1; i++ {
		if unicode.IsUpper(runes[i]) && (unicode.IsLetter(runes[i+1]) || runes[i+1] == '-') {
			return true
		}
	}
	return false
}
