package analyzer

import "unicode/utf8"

const (
	minKeywords     = 3
	maxKeywords     = 7
	runesPerKeyword = 100
)

// ExtractKeywords returns the themes present in text: vocabulary matches
// first, then derived themes.
// Longer texts may surface more keywords, between 3 and 7.
func ExtractKeywords(text string) []string {
	return extractKeywords(tokenize(text), utf8.RuneCountInString(text))
}

func extractKeywords(t *tokenizedText, textLen int) []string {
	var themes []string
	for _, theme := range themeVocabulary {
		if t.counts[theme] > 0 || t.counts[theme+"s"] > 0 {
			themes = append(themes, capitalize(theme))
		}
	}
	for _, d := range derivedThemes {
		if t.containsAny(d.triggers...) {
			themes = append(themes, d.label)
		}
	}

	themes = dedupeStrings(themes)
	limit := max(minKeywords, min(maxKeywords, textLen/runesPerKeyword))
	if len(themes) > limit {
		themes = themes[:limit]
	}
	if themes == nil {
		return []string{}
	}
	return themes
}

// dedupeStrings removes repeats, keeping first occurrences in order
func dedupeStrings(in []string) []string {
	if len(in) == 0 {
		return in
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
