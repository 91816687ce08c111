package knowledge

import (
	"strings"
	"unicode"
)

// Arabic text arrives with inconsistent diacritics and letter variants,
// so matching runs over a folded form: diacritics and tatweel stripped,
// alef/yaa/taa-marbuta variants unified, Latin lowercased.

func foldRune(r rune) rune {
	switch r {
	case 'أ', 'إ', 'آ':
		return 'ا'
	case 'ى':
		return 'ي'
	case 'ة':
		return 'ه'
	}
	return unicode.ToLower(r)
}

func isStrippable(r rune) bool {
	// Harakat and Quranic annotation marks, plus tatweel.
	if r >= 0x064B && r <= 0x065F {
		return true
	}
	return r == 0x0640 || r == 0x0670
}

// NormalizeText folds a string for matching.
func NormalizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isStrippable(r) {
			continue
		}
		b.WriteRune(foldRune(r))
	}
	return b.String()
}

// Tokenize splits normalized text into letter/digit runs. Punctuation,
// including Arabic question marks and commas, acts as a separator.
func Tokenize(s string) []string {
	return strings.FieldsFunc(NormalizeText(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
