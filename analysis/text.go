package analysis

import (
	"strings"
)

// tokenPunct is trimmed from token edges before counting.
const tokenPunct = ".,!?;:\"'()[]"

// tokenize lowercases text and splits it into punctuation-trimmed tokens.
func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tok := strings.Trim(f, tokenPunct)
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// wordCount counts whitespace-separated words without normalization.
func wordCount(text string) int {
	return len(strings.Fields(text))
}

// splitSentences splits text into non-empty sentences on '.', '!' and '?'.
func splitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// countFillers counts filler occurrences in a token stream. Multi-word
// fillers match adjacent token runs; each matched token run counts once.
func countFillers(tokens []string, fillers []string) int {
	singles := make(map[string]bool)
	var phrases [][]string
	for _, f := range fillers {
		parts := strings.Fields(f)
		if len(parts) == 1 {
			singles[parts[0]] = true
		} else if len(parts) > 1 {
			phrases = append(phrases, parts)
		}
	}

	count := 0
	for i := 0; i < len(tokens); i++ {
		if singles[tokens[i]] {
			count++
			continue
		}
		for _, phrase := range phrases {
			if matchesPhrase(tokens, i, phrase) {
				count++
				i += len(phrase) - 1
				break
			}
		}
	}
	return count
}

func matchesPhrase(tokens []string, at int, phrase []string) bool {
	if at+len(phrase) > len(tokens) {
		return false
	}
	for j, p := range phrase {
		if tokens[at+j] != p {
			return false
		}
	}
	return true
}

// endsWithQuestion reports whether the trimmed text ends in a question mark.
func endsWithQuestion(text string) bool {
	trimmed := strings.TrimSpace(text)
	return strings.HasSuffix(trimmed, "?")
}
