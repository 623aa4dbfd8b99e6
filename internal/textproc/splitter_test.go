package textproc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKoreanSplitter(t *testing.T) {
	t.Parallel()

	s := KoreanSplitter{}

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
			name:     "single sentence",
			input:    "오늘은 날씨가 좋다.",
			expected: []string{"오늘은 날씨가 좋다."},
		},
		{
			name:     "two sentences",
			input:    "안녕하세요. 반갑습니다.",
			expected: []string{"안녕하세요.", "반갑습니다."},
		},
		{
			name:     "question and exclamation",
			input:    "정말인가요? 믿을 수 없다!",
			expected: []string{"정말인가요?", "믿을 수 없다!"},
		},
		{
			name:     "trailing text without terminator",
			input:    "끝났다. 그런데 말이야",
			expected: []string{"끝났다.", "그런데 말이야"},
		},
		{
			name:     "decimal number is not a boundary",
			input:    "가격은 3.5만 원이다. 비싸다.",
			expected: []string{"가격은 3.5만 원이다.", "비싸다."},
		},
		{
			name:     "ellipsis run splits once",
			input:    "글쎄요... 모르겠어요.",
			expected: []string{"글쎄요...", "모르겠어요."},
		},
		{
			name:     "terminator inside a word does not split",
			input:    "주소는 example.com 입니다.",
			expected: []string{"주소는 example.com 입니다."},
		},
		{
			name:     "closing quote stays with its sentence",
			input:    `그는 "괜찮다." 라고 말했다.`,
			expected: []string{`그는 "괜찮다."`, "라고 말했다."},
		},
		{
			name:     "fullwidth terminators",
			input:    "어서 오세요！ 앉으세요。",
			expected: []string{"어서 오세요！", "앉으세요。"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, s.Split(tc.input))
		})
	}
}
