package textproc

import (
	"log/slog"
	"regexp"
	"sort"
	"unicode/utf8"
)

// hangulPattern matches maximal runs of precomposed Hangul syllables
// (U+AC00..U+D7A3). Vocabulary extraction is fixed to this block.
var hangulPattern = regexp.MustCompile(`[가-힣]+`)

// Processor bundles the cleaning, segmentation, and vocabulary stages
// behind one façade. It holds no per-call state and is safe for
// concurrent use.
type Processor struct {
	normalizer *Normalizer
	segmenter  *Segmenter
}

// NewProcessor wires a Processor. A nil splitter falls back to the
// rule-based KoreanSplitter and a nil spacer to NopSpacer.
func NewProcessor(splitter SentenceSplitter, spacer Spacer, logger *slog.Logger) *Processor {
	return &Processor{
		normalizer: NewNormalizer(spacer, logger),
		segmenter:  NewSegmenter(splitter),
	}
}

// Normalize exposes the cleaning stage on its own.
func (p *Processor) Normalize(text string) string {
	return p.normalizer.Normalize(text)
}

// SplitIntoSentences cleans raw OCR text and returns the surviving
// sentences in first-appearance order.
func (p *Processor) SplitIntoSentences(text string) []string {
	normalized := p.normalizer.Normalize(text)
	if normalized == "" {
		return nil
	}
	var sentences []string
	for _, segment := range p.segmenter.Segment(normalized) {
		if s, ok := normalizeSentence(segment); ok {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// ExtractVocabulary returns the unique Hangul words of at least minLength
// syllables, sorted by code point for reproducible output. minLength
// below 1 is clamped to 1.
func (p *Processor) ExtractVocabulary(text string, minLength int) []string {
	if minLength < 1 {
		minLength = 1
	}
	normalized := p.normalizer.Normalize(text)

	seen := make(map[string]struct{})
	var words []string
	for _, word := range hangulPattern.FindAllString(normalized, -1) {
		if utf8.RuneCountInString(word) < minLength {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}
