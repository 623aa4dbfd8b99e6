package storage

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestEncodeSentenceRecord(t *testing.T) {
	t.Parallel()

	rec := SentenceRecord{
		DocumentID:    uuid.NewString(),
		Sentences:     []string{"정해진 일은 아무지게 끝내고 반성은 나중에 하는 성격이다.", "그래서 오늘도 책을 읽는다."},
		SentenceCount: 2,
	}
	data, err := EncodeSentenceRecord(rec)
	require.NoError(t, err)
	require.NoError(t, ValidateSentenceRecord(data))
}

func TestEncodeSentenceRecordNilSentences(t *testing.T) {
	t.Parallel()

	// A document whose text yields no sentences still stores a valid record.
	data, err := EncodeSentenceRecord(SentenceRecord{DocumentID: uuid.NewString()})
	require.NoError(t, err)
	require.Contains(t, string(data), `"sentences":[]`)
}

func TestValidateSentenceRecordRejectsBadShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
	}{
		{"not json", "{"},
		{"missing fields", `{"document_id":"x"}`},
		{"empty sentence", `{"document_id":"x","sentences":[""],"sentence_count":1}`},
		{"negative count", `{"document_id":"x","sentences":[],"sentence_count":-1}`},
		{"extra field", `{"document_id":"x","sentences":[],"sentence_count":0,"extra":true}`},
		{"wrong types", `{"document_id":1,"sentences":"no","sentence_count":"0"}`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Error(t, ValidateSentenceRecord([]byte(tt.in)))
		})
	}
}

func TestSentenceRecordRoundTrip(t *testing.T) {
	t.Parallel()

	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	docID := uuid.New()
	rec := SentenceRecord{
		DocumentID:    docID.String(),
		Sentences:     []string{"옷 하나를 골랐다."},
		SentenceCount: 1,
	}

	_, err = LoadSentenceRecord(ctx, s, docID)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, SaveSentenceRecord(ctx, s, docID, rec))

	got, err := LoadSentenceRecord(ctx, s, docID)
	require.NoError(t, err)
	require.Equal(t, rec, got)
}

func TestOCRTextRoundTrip(t *testing.T) {
	t.Parallel()

	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	docID := uuid.New()

	_, err = LoadOCRText(ctx, s, docID)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, SaveOCRText(ctx, s, docID, "옷 하나를 골랐다."))
	got, err := LoadOCRText(ctx, s, docID)
	require.NoError(t, err)
	require.Equal(t, "옷 하나를 골랐다.", got)
}
