package ocr

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yeonjae-dev/ocrean/constants"
)

// fakeRunner answers exec calls from a per-command handler so no external
// binaries are needed.
type fakeRunner struct {
	handlers map[string]func(args []string) ([]byte, []byte, error)
	calls    []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, name)
	h, ok := f.handlers[name]
	if !ok {
		return nil, nil, fmt.Errorf("unexpected command %q", name)
	}
	return h(args)
}

func newTestExtractor(t *testing.T, r Runner) *Extractor {
	t.Helper()
	e := NewExtractor(Config{TesseractLang: "kor"}, nil)
	e.runner = r
	return e
}

const koreanSample = "정해진 일은 아무지게 끝내고 반성은 나중에 하는 성격이다. 그래서 오늘도 책을 읽는다."

func TestExtractImage(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{handlers: map[string]func([]string) ([]byte, []byte, error){
		"tesseract": func(args []string) ([]byte, []byte, error) {
			return []byte(koreanSample + "\n\n____\n"), nil, nil
		},
	}}
	e := newTestExtractor(t, runner)

	res, err := e.Extract(context.Background(), "page.png")
	require.NoError(t, err)
	require.Equal(t, constants.IMAGE, res.SourceType)
	require.Equal(t, "image-ocr", res.Method)
	require.Equal(t, 1, res.Pages)
	require.Equal(t, "kor", res.Language)
	require.Equal(t, koreanSample, res.Text)
	require.Greater(t, res.Confidence, float32(0.2))
}

func TestExtractImageTSVConfidence(t *testing.T) {
	t.Parallel()

	tsv := "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n" +
		"5\t1\t1\t1\t1\t1\t0\t0\t10\t10\t90\t정해진\n" +
		"5\t1\t1\t1\t1\t2\t0\t0\t10\t10\t-1\t\n" +
		"5\t1\t1\t1\t1\t3\t0\t0\t10\t10\t70\t일은\n"

	runner := &fakeRunner{handlers: map[string]func([]string) ([]byte, []byte, error){
		"tesseract": func(args []string) ([]byte, []byte, error) {
			if args[len(args)-1] == "tsv" {
				return []byte(tsv), nil, nil
			}
			return []byte(koreanSample), nil, nil
		},
	}}
	e := NewExtractor(Config{TesseractLang: "kor", EnableTSVConfidence: true}, nil)
	e.runner = runner

	res, err := e.extractImage(context.Background(), "page.png")
	require.NoError(t, err)
	// TSV mean is (90+70)/2 = 80% and dominates the blend.
	require.InDelta(t, 0.7*0.8+0.3*float64(heuristicConfidence(koreanSample)), float64(res.Confidence), 0.01)
}

func TestExtractPDFTextLayer(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{handlers: map[string]func([]string) ([]byte, []byte, error){
		"pdftotext": func(args []string) ([]byte, []byte, error) {
			return []byte(koreanSample + "\f" + koreanSample), nil, nil
		},
	}}
	e := newTestExtractor(t, runner)

	res, err := e.Extract(context.Background(), "book.pdf")
	require.NoError(t, err)
	require.Equal(t, "pdf-text", res.Method)
	require.Equal(t, 2, res.Pages)
	require.NotContains(t, runner.calls, "pdftoppm")
}

func TestExtractPDFFallsBackToOCR(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{handlers: map[string]func([]string) ([]byte, []byte, error){
		"pdftotext": func(args []string) ([]byte, []byte, error) {
			// no usable text layer
			return []byte("  \n"), nil, nil
		},
		"pdftoppm": func(args []string) ([]byte, []byte, error) {
			prefix := args[len(args)-1]
			for i := 1; i <= 2; i++ {
				path := fmt.Sprintf("%s-%d.png", prefix, i)
				if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
					return nil, nil, err
				}
			}
			return nil, nil, nil
		},
		"tesseract": func(args []string) ([]byte, []byte, error) {
			return []byte(koreanSample), nil, nil
		},
	}}
	e := newTestExtractor(t, runner)

	res, err := e.extractPDF(context.Background(), "scan.pdf")
	require.NoError(t, err)
	require.Equal(t, "pdf-ocr", res.Method)
	require.Equal(t, 2, res.Pages)
	require.Contains(t, res.Text, "\f") // page break marker survives
	require.Contains(t, runner.calls, "pdftoppm")
}

func TestExtractUnsupportedExtension(t *testing.T) {
	t.Parallel()

	e := newTestExtractor(t, &fakeRunner{})
	_, err := e.Extract(context.Background(), "notes.txt")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported extension")
}

func TestConvertHEICUnsupportedConverter(t *testing.T) {
	t.Parallel()

	_, _, cleanup, err := convertHEICtoPNG(context.Background(), &fakeRunner{}, "", "photo.heic")
	if cleanup != nil {
		cleanup()
	}
	require.Error(t, err)
	require.Contains(t, err.Error(), "HEIC not supported")
}

func TestCleanOCROutput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"crlf", "가\r\n나", "가\n나"},
		{"box noise line dropped", "가\n____\n나", "가\n\n나"},
		{"dash rule dropped", "가\n----------\n나", "가\n\n나"},
		{"trailing ws stripped", "가   \n나\t", "가\n나"},
		{"blank runs collapsed", "가\n\n\n\n나", "가\n\n나"},
		{"nul removed", "가\x00나", "가나"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, CleanOCROutput(tt.in))
		})
	}
}

func TestUsableTextLayer(t *testing.T) {
	t.Parallel()

	require.False(t, usableTextLayer(""))
	require.False(t, usableTextLayer("   \n\f  "))
	require.False(t, usableTextLayer("짧음"))
	require.False(t, usableTextLayer(strings.Repeat("�", 64)))
	require.True(t, usableTextLayer(koreanSample))
}

func TestHeuristicConfidence(t *testing.T) {
	t.Parallel()

	require.Equal(t, float32(0.2), heuristicConfidence(""))
	korean := heuristicConfidence(koreanSample)
	garbage := heuristicConfidence("@#$% ^&*( )!~ 123 456 789 000")
	require.Greater(t, korean, garbage)
	require.LessOrEqual(t, korean, float32(1.0))
}

func TestPDFToOCRRespectsMaxPages(t *testing.T) {
	t.Parallel()

	var tesseractCalls int
	runner := &fakeRunner{handlers: map[string]func([]string) ([]byte, []byte, error){
		"pdftoppm": func(args []string) ([]byte, []byte, error) {
			prefix := args[len(args)-1]
			for i := 1; i <= 5; i++ {
				if err := os.WriteFile(fmt.Sprintf("%s-%d.png", prefix, i), []byte("png"), 0o644); err != nil {
					return nil, nil, err
				}
			}
			return nil, nil, nil
		},
		"tesseract": func(args []string) ([]byte, []byte, error) {
			tesseractCalls++
			return []byte(koreanSample), nil, nil
		},
	}}
	e := NewExtractor(Config{TesseractLang: "kor", MaxPages: 2}, nil)
	e.runner = runner

	_, pages, _, err := e.pdfToOCR(context.Background(), "scan.pdf")
	require.NoError(t, err)
	require.Equal(t, 2, pages)
	require.Equal(t, 2, tesseractCalls)
}
