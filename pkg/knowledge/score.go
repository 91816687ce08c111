package knowledge

import "strings"

// DiceSimilarity compares two token sets: 2*|A∩B| / (|A|+|B|).
// Symmetric, so it suits question-to-question matching.
func DiceSimilarity(a, b []string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	shared := 0
	for t := range setA {
		if _, ok := setB[t]; ok {
			shared++
		}
	}
	return 2 * float64(shared) / float64(len(setA)+len(setB))
}

// Containment is the fraction of question tokens present in the
// candidate text. Asymmetric, so a short question can still match a
// long document excerpt.
func Containment(questionTokens []string, textTokens []string) float64 {
	qSet := tokenSet(questionTokens)
	if len(qSet) == 0 {
		return 0
	}
	tSet := tokenSet(textTokens)

	found := 0
	for t := range qSet {
		if _, ok := tSet[t]; ok {
			found++
		}
	}
	return float64(found) / float64(len(qSet))
}

// KeywordOverlap scores a comma-separated keyword list against the
// question tokens. A multi-word keyword counts when all its words hit.
func KeywordOverlap(questionTokens []string, keywords string) float64 {
	qSet := tokenSet(questionTokens)
	entries := strings.Split(keywords, ",")

	total := 0
	matched := 0
	for _, entry := range entries {
		words := Tokenize(entry)
		if len(words) == 0 {
			continue
		}
		total++

		hit := true
		for _, w := range words {
			if _, ok := qSet[w]; !ok {
				hit = false
				break
			}
		}
		if hit {
			matched++
		}
	}

	if total == 0 {
		return 0
	}
	return float64(matched) / float64(total)
}
