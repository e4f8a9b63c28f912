package ranking

import "strings"

// Tokenize lowercases text and splits it on runs of whitespace.
// Leading and trailing whitespace never produce empty tokens.
func Tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

// Score returns the token-overlap ratio of queryText against candidateText:
// the number of query tokens found anywhere in the candidate, divided by the
// longer of the two token sequences. Repeated query tokens count once per
// occurrence. Two empty inputs score 0.
func Score(queryText, candidateText string) float64 {
	return scoreTokens(Tokenize(queryText), Tokenize(candidateText))
}

func scoreTokens(query, candidate []string) float64 {
	denom := max(len(query), len(candidate))
	if denom == 0 {
		return 0
	}

	set := make(map[string]struct{}, len(candidate))
	for _, tok := range candidate {
		set[tok] = struct{}{}
	}

	matches := 0
	for _, tok := range query {
		if _, ok := set[tok]; ok {
			matches++
		}
	}
	return float64(matches) / float64(denom)
}
