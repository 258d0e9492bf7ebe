package analyzer

import "strings"

// token is a lowercase word and its byte span in the lowercased source
type token struct {
	text       string
	start, end int
}

// tokenizedText is a text split once into word tokens.
// Words are maximal runs of [a-z0-9_], matching a regex \w word boundary.
type tokenizedText struct {
	lower  string
	tokens []token
	counts map[string]int
}

func tokenize(text string) *tokenizedText {
	lower := strings.ToLower(text)
	t := &tokenizedText{
		lower:  lower,
		counts: make(map[string]int),
	}

	start := -1
	for i := 0; i < len(lower); i++ {
		if isWordByte(lower[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			t.add(start, i)
			start = -1
		}
	}
	if start >= 0 {
		t.add(start, len(lower))
	}
	return t
}

func (t *tokenizedText) add(start, end int) {
	word := t.lower[start:end]
	t.tokens = append(t.tokens, token{text: word, start: start, end: end})
	t.counts[word]++
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '_'
}

// count returns whole-word occurrences of term. A multi-word term matches
// consecutive tokens separated by exactly one space.
func (t *tokenizedText) count(term string) int {
	if !strings.Contains(term, " ") {
		return t.counts[term]
	}

	words := strings.Split(term, " ")
	n := 0
	for i := 0; i+len(words) <= len(t.tokens); i++ {
		if t.phraseAt(i, words) {
			n++
			i += len(words) - 1
		}
	}
	return n
}

func (t *tokenizedText) phraseAt(i int, words []string) bool {
	for j, w := range words {
		tok := t.tokens[i+j]
		if tok.text != w {
			return false
		}
		if j > 0 && t.lower[t.tokens[i+j-1].end:tok.start] != " " {
			return false
		}
	}
	return true
}

// countAny sums count over terms
func (t *tokenizedText) countAny(terms ...string) int {
	n := 0
	for _, term := range terms {
		n += t.count(term)
	}
	return n
}

// hasAny reports whether any term occurs as a whole word
func (t *tokenizedText) hasAny(terms ...string) bool {
	return t.countAny(terms...) > 0
}

// containsAny reports whether any needle is a substring of the lowercased text
func (t *tokenizedText) containsAny(needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(t.lower, n) {
			return true
		}
	}
	return false
}

// hasRepeatedWord reports whether some single line of text contains the
// same word (case-insensitive) at least three times.
func hasRepeatedWord(text string) bool {
	lines := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
	})
	for _, line := range lines {
		for _, n := range tokenize(line).counts {
			if n >= 3 {
				return true
			}
		}
	}
	return false
}
