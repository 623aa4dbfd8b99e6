package textproc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type verbatimSplitter struct{}

func (verbatimSplitter) Split(text string) []string { return []string{text} }

func TestSegment_QuoteOrdering(t *testing.T) {
	t.Parallel()

	s := NewSegmenter(verbatimSplitter{})

	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty input skips the boundary model",
			input:    "",
			expected: nil,
		},
		{
			name:     "no quotes yields the sentence unchanged",
			input:    "조용한 아침이다.",
			expected: []string{"조용한 아침이다."},
		},
		{
			name:  "prefix quote suffix order",
			input: `그는 말했다 "괜찮아질 거야" 그리고 떠났다.`,
			expected: []string{
				"그는 말했다",
				`"괜찮아질 거야"`,
				"그리고 떠났다.",
			},
		},
		{
			name:  "two quote pairs left to right",
			input: `"첫마디" 그리고 "둘째마디" 끝났다.`,
			expected: []string{
				`"첫마디"`,
				"그리고",
				`"둘째마디"`,
				"끝났다.",
			},
		},
		{
			name:     "single quotes split too",
			input:    "그녀는 '아니야' 라고 답했다.",
			expected: []string{"그녀는", "'아니야'", "라고 답했다."},
		},
		{
			name:     "unmatched quote leaves the sentence whole",
			input:    `그는 "말을 멈췄다.`,
			expected: []string{`그는 "말을 멈췄다.`},
		},
		{
			name:     "quote at sentence start has no empty prefix",
			input:    `"시작이 반이다" 라는 말이 있다.`,
			expected: []string{`"시작이 반이다"`, "라는 말이 있다."},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, s.Segment(tc.input))
		})
	}
}

func TestSegment_UsesInjectedSplitter(t *testing.T) {
	t.Parallel()

	s := NewSegmenter(splitterFunc(func(text string) []string {
		return []string{"하나", "둘"}
	}))
	require.Equal(t, []string{"하나", "둘"}, s.Segment("아무 텍스트"))
}

type splitterFunc func(string) []string

func (f splitterFunc) Split(text string) []string { return f(text) }
