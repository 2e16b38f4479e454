package rubric

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// transcript is the normalized view of one input string. Built once per
// scoring call and read-only afterwards.
type transcript struct {
	raw    string   // trimmed original text, used for capability calls
	lower  string   // lowercased trimmed text, used for phrase matching
	tokens []string // lowercase whitespace tokens, punctuation attached
}

// normalize trims and tokenizes raw input. Tokens are plain whitespace
// fields so word counts match the rubric's WPM and TTR arithmetic.
func normalize(raw string) transcript {
	trimmed := strings.TrimSpace(raw)
	lower := strings.ToLower(trimmed)
	return transcript{
		raw:    trimmed,
		lower:  lower,
		tokens: strings.Fields(lower),
	}
}

func (t transcript) empty() bool { return len(t.tokens) == 0 }

func (t transcript) wordCount() int { return len(t.tokens) }

// typeTokenRatio is unique tokens over total tokens, 0 for empty input.
func (t transcript) typeTokenRatio() float64 {
	if len(t.tokens) == 0 {
		return 0
	}
	seen := make(map[string]struct{}, len(t.tokens))
	for _, tok := range t.tokens {
		seen[tok] = struct{}{}
	}
	return float64(len(seen)) / float64(len(t.tokens))
}

// wordChar reports whether r is part of a word for boundary checks.
// Apostrophes count so contractions stay whole.
func wordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\''
}

// trimToken strips leading and trailing punctuation from a token.
func trimToken(tok string) string {
	return strings.TrimFunc(tok, func(r rune) bool { return !wordChar(r) })
}

// patternIndex returns the byte offset of the first occurrence of pattern
// in t.lower, or -1. Multi-word patterns match as substrings; single-word
// patterns match only at word boundaries, so "hi" never fires inside
// "something".
func (t transcript) patternIndex(pattern string) int {
	if strings.ContainsRune(pattern, ' ') {
		return strings.Index(t.lower, pattern)
	}
	return wordIndex(t.lower, pattern)
}

// firstIndex returns the smallest pattern offset across patterns, or -1
// when none match.
func (t transcript) firstIndex(patterns []string) int {
	best := -1
	for _, p := range patterns {
		idx := t.patternIndex(p)
		if idx < 0 {
			continue
		}
		if best < 0 || idx < best {
			best = idx
		}
	}
	return best
}

// matchesAny reports whether any pattern occurs in the transcript.
func (t transcript) matchesAny(patterns []string) bool {
	return t.firstIndex(patterns) >= 0
}

// wordIndex finds word at a word boundary in s and returns its byte offset,
// or -1.
func wordIndex(s, word string) int {
	offset := 0
	for {
		idx := strings.Index(s[offset:], word)
		if idx < 0 {
			return -1
		}
		abs := offset + idx
		if boundedAt(s, abs, len(word)) {
			return abs
		}
		offset = abs + 1
	}
}

// phraseCount counts boundary-delimited occurrences of phrase in s, so
// "i mean" does not count inside "i meant".
func phraseCount(s, phrase string) int {
	count := 0
	offset := 0
	for {
		idx := strings.Index(s[offset:], phrase)
		if idx < 0 {
			return count
		}
		abs := offset + idx
		if boundedAt(s, abs, len(phrase)) {
			count++
		}
		offset = abs + len(phrase)
	}
}

// boundedAt reports whether s[pos:pos+n] sits at word boundaries.
func boundedAt(s string, pos, n int) bool {
	if pos > 0 {
		before, _ := utf8.DecodeLastRuneInString(s[:pos])
		if wordChar(before) {
			return false
		}
	}
	if end := pos + n; end < len(s) {
		after, _ := utf8.DecodeRuneInString(s[end:])
		if wordChar(after) {
			return false
		}
	}
	return true
}
