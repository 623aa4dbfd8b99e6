package ocr

import "unicode"

// heuristicConfidence scores decoded text by how much of it looks like
// real Korean prose. Tesseract on a bad scan tends to emit short bursts
// of latin/symbol garbage, so a healthy Hangul ratio is the strongest
// signal we have without the TSV pass.
func heuristicConfidence(txt string) float32 {
	score := float32(0.2) // base

	var hangul, letters, total int
	for _, r := range txt {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if r >= 0xAC00 && r <= 0xD7A3 {
			hangul++
			letters++
		} else if unicode.IsLetter(r) {
			letters++
		}
	}
	if total == 0 {
		return score
	}

	hangulRatio := float32(hangul) / float32(total)
	letterRatio := float32(letters) / float32(total)

	switch {
	case hangulRatio >= 0.5:
		score += 0.4
	case hangulRatio >= 0.2:
		score += 0.25
	}
	if letterRatio >= 0.6 {
		score += 0.2
	}
	if total > 120 { // enough content
		score += 0.1
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
