// Package textproc cleans raw OCR text and derives sentence lists and
// Hangul vocabulary from it. Every operation is a pure function of its
// input: empty input produces empty output and nothing here returns an
// error to the caller.
package textproc

import (
	"log/slog"
	"regexp"
	"strings"
)

var (
	// whitespacePattern matches runs of ASCII and Unicode space characters.
	whitespacePattern = regexp.MustCompile(`[\s\p{Zs}]+`)
)

// Normalizer repairs whitespace and encoding artifacts in raw OCR text.
// An optional Spacer adds word boundaries to unspaced Korean text on a
// best-effort basis; spacer failures are swallowed and the unspaced text
// is kept.
type Normalizer struct {
	spacer Spacer
	logger *slog.Logger
}

func NewNormalizer(spacer Spacer, logger *slog.Logger) *Normalizer {
	if spacer == nil {
		spacer = NopSpacer{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{spacer: spacer, logger: logger}
}

// Normalize collapses whitespace, fixes simple OCR artifacts, and trims.
// Idempotent: Normalize(Normalize(s)) == Normalize(s).
func (n *Normalizer) Normalize(text string) string {
	// OCR/transcription output sometimes carries the literal two-character
	// escape sequences instead of real newlines and quotes.
	s := strings.ReplaceAll(text, `\n`, " ")
	s = strings.ReplaceAll(s, `\"`, `"`)
	s = whitespacePattern.ReplaceAllString(s, " ")

	if spaced, err := n.spacer.Space(s); err == nil {
		s = spaced
	} else {
		n.logger.Debug("spacing pass unavailable, keeping unspaced text", "error", err)
	}

	// The spacing pass may introduce new whitespace runs.
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
