package textproc

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Punctuation and quote characters stripped from segment edges.
const sentenceBoundaryChars = " :;-—\"'“”‘’·•()[]"

// Sentences shorter than this after cleanup are noise.
const minSentenceLength = 3

// noisePattern matches strings with no letter content at all: digits,
// punctuation, and underscores only. Combining marks count as content so
// decomposed text is not rejected.
var noisePattern = regexp.MustCompile(`^[^\p{L}\p{M}]+$`)

// normalizeSentence cleans a single segment and reports whether it
// survives filtering. Digit orphans are removed before the length check so
// a lone page number is rejected, and edges are trimmed again afterwards
// because removing digits can expose new boundary punctuation.
func normalizeSentence(segment string) (string, bool) {
	if segment == "" {
		return "", false
	}
	text := strings.Trim(segment, sentenceBoundaryChars)
	text = removeDigitOrphans(text)
	text = whitespacePattern.ReplaceAllString(text, " ")
	text = strings.Trim(text, sentenceBoundaryChars)

	if utf8.RuneCountInString(text) < minSentenceLength {
		return "", false
	}
	if noisePattern.MatchString(text) {
		return "", false
	}
	return text, true
}

// removeDigitOrphans drops isolated runs of 1-4 digits, the stray page and
// footnote numbers OCR injects mid-text. A run is isolated when neither
// neighbour is a letter, digit, or underscore. This is a manual scan
// because RE2 has no lookaround and its \b is ASCII-only, which would
// treat Hangul-adjacent digits as isolated.
func removeDigitOrphans(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(runes); {
		if !unicode.IsDigit(runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}
		j := i
		for j < len(runes) && unicode.IsDigit(runes[j]) {
			j++
		}
		isolated := j-i <= 4 &&
			(i == 0 || !isWordRune(runes[i-1])) &&
			(j == len(runes) || !isWordRune(runes[j]))
		if !isolated {
			b.WriteString(string(runes[i:j]))
		}
		i = j
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
