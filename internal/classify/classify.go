// Package classify holds the keyword heuristics used to label articles. The
// functions are stateless and operate case-insensitively on free text; they
// are deliberately crude substitutes for NLP, tuned only far enough to make
// clustering and ranking behave sensibly.
package classify

import "strings"

// categoryFamilies are checked in order; output preserves this order.
var categoryFamilies = []struct {
	name     string
	keywords []string
}{
	{"advertising", []string{"ad", "campaign", "marketing", "commercial", "advert"}},
	{"finance", []string{"donation", "donated", "pac", "super pac", "funded", "sponsor", "sponsorship"}},
	{"labor", []string{"labor", "union", "workers", "strike", "supply", "factory", "supplier"}},
	{"privacy", []string{"privacy", "data", "breach", "security", "leak"}},
	{"social", []string{"tweet", "post", "comment", "social", "speech", "offensive", "backlash"}},
}

// tiltFamilies are independent additive signals; a text matching several
// families sums every applicable delta before clamping.
var tiltFamilies = []struct {
	delta    int
	keywords []string
}{
	{-20, []string{"environment", "climate", "lgbt", "pride", "diversity", "equity"}},
	{+20, []string{"gun", "border", "police", "patriot", "prolife", "2a", "second amendment"}},
	{+25, []string{"abortion", "planned parenthood"}},
	{-25, []string{"transgender", "drag", "inclusion"}},
}

var scandalKeywords = []string{
	"scandal", "controversy", "backlash", "outrage", "protest", "boycott",
	"lawsuit", "investigation", "allegations", "accusations", "misconduct",
	"violation", "breach", "leak", "exposed", "revealed", "whistleblower",
	"resignation", "fired", "suspended", "penalty", "fine", "settlement",
	"crisis", "emergency", "recall", "defective", "unsafe", "harmful",
	"discrimination", "harassment", "racism", "sexism", "bias", "prejudice",
	"corruption", "bribery", "fraud", "embezzlement", "tax evasion",
	"environmental damage", "pollution", "climate denial", "greenwashing",
}

// Categories classifies text into zero or more controversy categories and
// returns {"general"} when nothing matches. Output order is the fixed family
// check order, never input-dependent.
func Categories(text string) []string {
	t := strings.ToLower(text)
	var cats []string
	for _, fam := range categoryFamilies {
		if containsAny(t, fam.keywords) {
			cats = append(cats, fam.name)
		}
	}
	if len(cats) == 0 {
		cats = []string{"general"}
	}
	return cats
}

// Tilt estimates which ideological perspective finds the text more
// scandalous: negative skews liberal-leaning, positive conservative-leaning.
// The result is clamped to [-100, 100].
func Tilt(text string) int {
	t := strings.ToLower(text)
	tilt := 0
	for _, fam := range tiltFamilies {
		if containsAny(t, fam.keywords) {
			tilt += fam.delta
		}
	}
	if tilt < -100 {
		return -100
	}
	if tilt > 100 {
		return 100
	}
	return tilt
}

// IsScandalous reports whether the text carries any scandal-signal keyword.
func IsScandalous(text string) bool {
	return containsAny(strings.ToLower(text), scandalKeywords)
}

func containsAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
