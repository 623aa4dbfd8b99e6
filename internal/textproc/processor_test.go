package textproc

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func newTestProcessor() *Processor {
	return NewProcessor(nil, nil, nil)
}

func TestSplitIntoSentences(t *testing.T) {
	t.Parallel()

	p := newTestProcessor()

	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "whitespace only",
			input:    "   \t  ",
			expected: nil,
		},
		{
			name:     "two plain sentences",
			input:    "오늘은 날씨가 좋다. 산책을 나갔다.",
			expected: []string{"오늘은 날씨가 좋다.", "산책을 나갔다."},
		},
		{
			name:  "escaped quotes repaired and quote segmented",
			input: `선생님은 \"반갑습니다 여러분\" 이라고 말씀하셨다.`,
			expected: []string{
				"선생님은",
				"반갑습니다 여러분",
				"이라고 말씀하셨다.",
			},
		},
		{
			name:     "page number noise dropped",
			input:    "정해진 일은 아무지게 끝내고 41 반성은 나중에. 127.",
			expected: []string{"정해진 일은 아무지게 끝내고 반성은 나중에."},
		},
		{
			name:     "noise only input",
			input:    "12 34 ... (5)",
			expected: nil,
		},
		{
			name:     "irregular whitespace and literal newlines",
			input:    `첫 번째   문장이다.\n두 번째  문장이다.`,
			expected: []string{"첫 번째 문장이다.", "두 번째 문장이다."},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, p.SplitIntoSentences(tc.input))
		})
	}
}

func TestSplitIntoSentences_MinimumLength(t *testing.T) {
	t.Parallel()

	p := newTestProcessor()
	inputs := []string{
		"아. 네. 오늘은 날씨가 좋다.",
		`"옷" 하나만 샀다.`,
		"123. 길게 이어지는 문장 하나.",
	}
	for _, in := range inputs {
		for _, s := range p.SplitIntoSentences(in) {
			require.GreaterOrEqual(t, utf8.RuneCountInString(s), minSentenceLength, "sentence %q from %q", s, in)
		}
	}
}

func TestSplitIntoSentences_NoEscapedQuotesSurvive(t *testing.T) {
	t.Parallel()

	p := newTestProcessor()
	out := p.SplitIntoSentences(`그는 \"마음가짐이 전부다\" 라고 적었다.`)
	joined := strings.Join(out, " ")
	require.NotContains(t, joined, `\"`)
	require.Contains(t, joined, "마음가짐이 전부다")
}

func TestExtractVocabulary(t *testing.T) {
	t.Parallel()

	p := newTestProcessor()
	const text = "옷 하나 옷 둘 마음 마음가짐"

	t.Run("min length one keeps single syllables", func(t *testing.T) {
		t.Parallel()
		got := p.ExtractVocabulary(text, 1)
		require.Equal(t, []string{"둘", "마음", "마음가짐", "옷", "하나"}, got)
	})

	t.Run("min length three filters short words", func(t *testing.T) {
		t.Parallel()
		got := p.ExtractVocabulary(text, 3)
		require.Equal(t, []string{"마음가짐"}, got)
		require.NotContains(t, got, "옷")
	})

	t.Run("non positive min length clamps to one", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, p.ExtractVocabulary(text, 1), p.ExtractVocabulary(text, 0))
		require.Equal(t, p.ExtractVocabulary(text, 1), p.ExtractVocabulary(text, -5))
	})

	t.Run("deterministic and duplicate free", func(t *testing.T) {
		t.Parallel()
		first := p.ExtractVocabulary(text, 1)
		second := p.ExtractVocabulary(text, 1)
		require.Equal(t, first, second)
		seen := map[string]bool{}
		for _, w := range first {
			require.False(t, seen[w], "duplicate %q", w)
			seen[w] = true
		}
	})

	t.Run("mixed scripts keep only hangul runs", func(t *testing.T) {
		t.Parallel()
		got := p.ExtractVocabulary("OCR 결과에는 English words 와 숫자 42 가 섞인다", 1)
		require.Equal(t, []string{"가", "결과에는", "섞인다", "숫자", "와"}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		require.Empty(t, p.ExtractVocabulary("", 1))
		require.Empty(t, p.ExtractVocabulary("", 99))
	})
}
