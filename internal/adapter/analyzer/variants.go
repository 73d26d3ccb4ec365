package analyzer

import "strings"

// Variants returns crude morphological variants of each token: plural/singular,
// -ing/-ed swaps and a -tion form. Output may contain non-words and duplicates;
// callers deduplicate.
func Variants(tokens []string) []string {
	variants := make([]string, 0, len(tokens)*3)

	for _, token := range tokens {
		if strings.HasSuffix(token, "s") && len(token) > 3 {
			variants = append(variants, token[:len(token)-1])
		} else {
			variants = append(variants, token+"s")
		}

		if stem, ok := strings.CutSuffix(token, "ing"); ok {
			variants = append(variants, stem, stem+"ed")
		}

		if stem, ok := strings.CutSuffix(token, "ed"); ok {
			variants = append(variants, stem, stem+"ing")
		}

		if !strings.Contains(token, "tion") {
			variants = append(variants, token+"tion")
		}
	}

	return variants
}
