package ocr

import (
	"regexp"
	"strings"
)

var (
	// horizontal rules and table borders tesseract invents from scan artifacts
	reBoxNoise = regexp.MustCompile(`(?m)^\s*[_\-=]{3,}\s*$`)
	// three or more blank lines in a row collapse to one
	reBlankRuns = regexp.MustCompile(`\n{3,}`)
	// trailing whitespace on each line
	reTrailingWS = regexp.MustCompile(`(?m)[ \t]+$`)
)

// CleanOCROutput strips recurring engine noise from raw extraction output
// while preserving line structure. Sentence-level normalization happens
// later in textproc; this pass only removes what no downstream consumer
// should ever see.
func CleanOCROutput(txt string) string {
	if txt == "" {
		return txt
	}
	txt = strings.ReplaceAll(txt, "\r\n", "\n")
	txt = strings.ReplaceAll(txt, "\x00", "")
	txt = reBoxNoise.ReplaceAllString(txt, "")
	txt = reTrailingWS.ReplaceAllString(txt, "")
	txt = reBlankRuns.ReplaceAllString(txt, "\n\n")
	return strings.TrimSpace(txt)
}
