package textproc

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type failingSpacer struct{}

func (failingSpacer) Space(string) (string, error) {
	return "", errors.New("spacing service down")
}

type upperSpacer struct{}

func (upperSpacer) Space(text string) (string, error) {
	return strings.ToUpper(text), nil
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(nil, nil)

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    " \t\n  ",
			expected: "",
		},
		{
			name:     "collapses whitespace runs",
			input:    "옷장  정리는\t\t오늘   끝낸다",
			expected: "옷장 정리는 오늘 끝낸다",
		},
		{
			name:     "literal escaped newline becomes space",
			input:    `첫 줄\n둘째 줄`,
			expected: "첫 줄 둘째 줄",
		},
		{
			name:     "literal escaped quotes become bare quotes",
			input:    `그는 \"반갑습니다\" 라고 적었다`,
			expected: `그는 "반갑습니다" 라고 적었다`,
		},
		{
			name:     "trims leading and trailing whitespace",
			input:    "  마음가짐이 중요하다  ",
			expected: "마음가짐이 중요하다",
		},
		{
			name:     "unicode spaces collapse too",
			input:    "하나  둘　셋",
			expected: "하나 둘 셋",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, n.Normalize(tc.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(nil, nil)
	inputs := []string{
		"",
		`앞  뒤\n공백\"들\"   정리`,
		"이미 정리된 문장이다.",
		"  \t 123  ..  ",
	}
	for _, in := range inputs {
		once := n.Normalize(in)
		require.Equal(t, once, n.Normalize(once), "input %q", in)
	}
}

func TestNormalize_WhitespaceInvariant(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(nil, nil)
	inputs := []string{
		"a  b\t\tc\n\nd",
		`줄\n바꿈과   공백`,
		" 앞뒤 ",
	}
	for _, in := range inputs {
		out := n.Normalize(in)
		require.NotContains(t, out, "  ", "no double spaces in %q", out)
		require.Equal(t, strings.TrimSpace(out), out)
	}
}

func TestNormalize_SpacerFailureFallsBack(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(failingSpacer{}, nil)
	require.Equal(t, "띄어쓰기없는문장", n.Normalize("띄어쓰기없는문장"))
}

func TestNormalize_SpacerResultIsRecollapsed(t *testing.T) {
	t.Parallel()

	// A spacer that pads its output must not break the whitespace invariant.
	padding := spacerFunc(func(text string) (string, error) {
		return "  " + strings.ReplaceAll(text, " ", "   ") + "  ", nil
	})
	n := NewNormalizer(padding, nil)
	require.Equal(t, "하나 둘", n.Normalize("하나 둘"))
}

func TestNormalize_SpacerApplied(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(upperSpacer{}, nil)
	require.Equal(t, "ABC DEF", n.Normalize("abc  def"))
}

type spacerFunc func(string) (string, error)

func (f spacerFunc) Space(text string) (string, error) { return f(text) }
