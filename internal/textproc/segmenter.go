package textproc

import "strings"

// Segmenter turns normalized text into sentence-like segments: the
// injected SentenceSplitter finds sentence boundaries, then each raw
// sentence is further split on quotation marks so that quoted speech
// becomes its own segment.
type Segmenter struct {
	splitter SentenceSplitter
}

func NewSegmenter(splitter SentenceSplitter) *Segmenter {
	if splitter == nil {
		splitter = KoreanSplitter{}
	}
	return &Segmenter{splitter: splitter}
}

// Segment returns raw segments in source order. Input is expected to be
// normalized already; empty input yields no segments without touching the
// boundary model.
func (s *Segmenter) Segment(text string) []string {
	if text == "" {
		return nil
	}
	var segments []string
	for _, raw := range s.splitter.Split(text) {
		segments = append(segments, splitQuoted(raw)...)
	}
	return segments
}

// splitQuoted splits a sentence into quoted and unquoted spans, preserving
// reading order: prefix, quote, suffix for every matched pair found left
// to right. A sentence without a matched quote pair is returned as-is.
// Empty spans after trimming are dropped.
func splitQuoted(sentence string) []string {
	var out []string
	emit := func(s string) {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}

	rest := sentence
	for {
		i := strings.IndexAny(rest, `"'`)
		if i < 0 {
			break
		}
		q := rest[i]
		j := strings.IndexByte(rest[i+1:], q)
		if j < 0 {
			break
		}
		j += i + 1
		emit(rest[:i])
		emit(rest[i : j+1])
		rest = rest[j+1:]
	}
	emit(rest)
	return out
}
