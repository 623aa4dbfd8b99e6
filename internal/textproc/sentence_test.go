package textproc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeSentence(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected string
		keep     bool
	}{
		{
			name:  "empty segment rejected",
			input: "",
		},
		{
			name:     "plain sentence kept",
			input:    "오늘은 날씨가 좋다.",
			expected: "오늘은 날씨가 좋다.",
			keep:     true,
		},
		{
			name:     "boundary punctuation stripped from edges",
			input:    `— "마음가짐이 중요하다" —`,
			expected: "마음가짐이 중요하다",
			keep:     true,
		},
		{
			name:     "brackets and bullets stripped",
			input:    "[• 첫 번째 항목 •]",
			expected: "첫 번째 항목",
			keep:     true,
		},
		{
			name:     "digit orphan removed mid-sentence",
			input:    "정해진 일은 아무지게 끝내고 41 반성은 나중에",
			expected: "정해진 일은 아무지게 끝내고 반성은 나중에",
			keep:     true,
		},
		{
			name:     "digit attached to a word survives",
			input:    "제3장 시작된다",
			expected: "제3장 시작된다",
			keep:     true,
		},
		{
			name:     "long digit run survives",
			input:    "전화번호 01012345678 기억해",
			expected: "전화번호 01012345678 기억해",
			keep:     true,
		},
		{
			name:  "lone page number rejected",
			input: "123",
		},
		{
			name:  "digits plus punctuation rejected",
			input: "123.",
		},
		{
			name:  "punctuation only rejected",
			input: "...!?",
		},
		{
			name:  "too short after cleanup rejected",
			input: `"옷"`,
		},
		{
			name:  "underscores and digits rejected",
			input: "__12__",
		},
		{
			name:     "combining marks count as letter content",
			input:    "\u0301\u0308\u0301",
			expected: "\u0301\u0308\u0301",
			keep:     true,
		},
		{
			name:     "trim exposed by digit removal",
			input:    "마지막 문장이다 41)",
			expected: "마지막 문장이다",
			keep:     true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := normalizeSentence(tc.input)
			require.Equal(t, tc.keep, ok)
			if tc.keep {
				require.Equal(t, tc.expected, got)
			}
		})
	}
}

func TestRemoveDigitOrphans(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "no digits", input: "그대로 둔다", expected: "그대로 둔다"},
		{name: "isolated short run", input: "앞 12 뒤", expected: "앞  뒤"},
		{name: "isolated at start", input: "7 이야기", expected: " 이야기"},
		{name: "isolated at end", input: "이야기 7", expected: "이야기 "},
		{name: "four digits removed", input: "쪽 1234 번호", expected: "쪽  번호"},
		{name: "five digits kept", input: "쪽 12345 번호", expected: "쪽 12345 번호"},
		{name: "hangul-adjacent digits kept", input: "제3장", expected: "제3장"},
		{name: "latin-adjacent digits kept", input: "mp3 파일", expected: "mp3 파일"},
		{name: "underscore-adjacent digits kept", input: "_42_", expected: "_42_"},
		{name: "two isolated runs", input: "12 34", expected: " "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, removeDigitOrphans(tc.input))
		})
	}
}
