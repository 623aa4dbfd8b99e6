package textproc

import (
	"strings"
	"unicode"
)

// SentenceSplitter is the language-aware sentence boundary model. It
// returns the input's sentences in left-to-right order without mutating
// or reordering characters within each sentence. The rule-based
// KoreanSplitter below is the default; any engine satisfying this
// interface can be injected instead.
type SentenceSplitter interface {
	Split(text string) []string
}

// KoreanSplitter splits on terminal punctuation followed by whitespace or
// end of text. Korean sentences overwhelmingly end in 다/요/까 plus a
// terminator, so terminator-driven splitting is reliable once decimal
// numbers are guarded against.
type KoreanSplitter struct{}

func (KoreanSplitter) Split(text string) []string {
	var sentences []string
	emit := func(s string) {
		if t := strings.TrimSpace(s); t != "" {
			sentences = append(sentences, t)
		}
	}

	runes := []rune(text)
	start := 0
	for i := 0; i < len(runes); i++ {
		if !isTerminator(runes[i]) {
			continue
		}

		// Consume the whole terminator run ("...", "?!").
		j := i
		for j+1 < len(runes) && isTerminator(runes[j+1]) {
			j++
		}

		// A lone dot between digits is a decimal point, not a boundary.
		if runes[i] == '.' && i == j &&
			i > 0 && unicode.IsDigit(runes[i-1]) &&
			i+1 < len(runes) && unicode.IsDigit(runes[i+1]) {
			continue
		}

		// A closing quote right after the terminator belongs to the sentence.
		if j+1 < len(runes) && isClosingQuote(runes[j+1]) {
			j++
		}

		if j+1 < len(runes) && !unicode.IsSpace(runes[j+1]) {
			i = j
			continue
		}

		emit(string(runes[start : j+1]))
		i = j
		start = j + 1
	}
	if start < len(runes) {
		emit(string(runes[start:]))
	}
	return sentences
}

func isTerminator(r rune) bool {
	switch r {
	case '.', '!', '?', '…', '。', '！', '？':
		return true
	}
	return false
}

func isClosingQuote(r rune) bool {
	switch r {
	case '"', '\'', '”', '’', '」', '』':
		return true
	}
	return false
}
