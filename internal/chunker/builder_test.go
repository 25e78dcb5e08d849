package chunker

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admitlab/admit-cli/internal/core/domain"
)

func TestNewBuilder(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		b := NewBuilder()
		assert.Equal(t, DefaultMaxChars, b.maxChars)
		assert.Equal(t, DefaultOverlapChars, b.overlapChars)
	})

	t.Run("custom values", func(t *testing.T) {
		b := NewBuilder(WithMaxChars(500), WithOverlapChars(50))
		assert.Equal(t, 500, b.maxChars)
		assert.Equal(t, 50, b.overlapChars)
	})

	t.Run("overlap exceeding size is reduced", func(t *testing.T) {
		b := NewBuilder(WithMaxChars(100), WithOverlapChars(150))
		assert.Less(t, b.overlapChars, b.maxChars)
	})

	t.Run("zero and negative options ignored", func(t *testing.T) {
		b := NewBuilder(WithMaxChars(0), WithOverlapChars(-1))
		assert.Equal(t, DefaultMaxChars, b.maxChars)
		assert.Equal(t, DefaultOverlapChars, b.overlapChars)
	})
}

// Hand-traced packing: segments abcdefgh, ijklmnop, qrst with maxChars=20
// and overlap=5. The first two segments join (8+1+8=17 <= 20), qrst
// overflows (17+1+4=22), so the first chunk flushes and its last five
// characters seed the second.
func TestBuilder_Split_HandTraced(t *testing.T) {
	b := NewBuilder(WithMaxChars(20), WithOverlapChars(5))
	doc := domain.Document{
		ID:     "pdf_0",
		Source: "a.pdf",
		Title:  "a.pdf",
		Type:   domain.DocumentTypePDF,
		Text:   "abcdefgh\nijklmnop\nqrst",
	}

	chunks := b.Split(doc)
	require.Len(t, chunks, 2)

	assert.Equal(t, 0, chunks[0].ChunkID)
	assert.Equal(t, "abcdefgh\nijklmnop", chunks[0].Text)
	assert.Equal(t, 0, chunks[0].StartChar)
	assert.Equal(t, 17, chunks[0].EndChar)

	assert.Equal(t, 1, chunks[1].ChunkID)
	assert.Equal(t, "lmnop\nqrst", chunks[1].Text)
	assert.Equal(t, 12, chunks[1].StartChar)
	assert.Equal(t, 22, chunks[1].EndChar)

	for _, c := range chunks {
		assert.Equal(t, doc.ID, c.DocID)
		assert.Equal(t, doc.Source, c.Source)
		assert.Equal(t, doc.Type, c.Type)
	}
}

// Every segment must survive chunking in order: stripping the carried
// overlap prefix from each chunk after the first and joining the rest
// reconstructs the segment sequence exactly.
func TestBuilder_Split_Coverage(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 40; i++ {
		sb.WriteString("Admission requires a completed application form number ")
		sb.WriteString(strings.Repeat("x", i%7))
		sb.WriteString(". ")
	}
	text := sb.String()

	const maxChars, overlap = 120, 30
	b := NewBuilder(WithMaxChars(maxChars), WithOverlapChars(overlap))
	doc := domain.Document{ID: "pdf_0", Text: text}

	chunks := b.Split(doc)
	require.NotEmpty(t, chunks)

	rebuilt := chunks[0].Text
	for i := 1; i < len(chunks); i++ {
		prefix := overlapTail(chunks[i-1].Text, overlap) + "\n"
		require.True(t, strings.HasPrefix(chunks[i].Text, prefix),
			"chunk %d does not start with the previous chunk's tail", i)
		rebuilt += "\n" + strings.TrimPrefix(chunks[i].Text, prefix)
	}

	assert.Equal(t, strings.Join(Segments(text), "\n"), rebuilt)
}

func TestBuilder_Split_SizeBound(t *testing.T) {
	text := strings.Repeat("Tuition fees are published each spring. ", 60)
	b := NewBuilder(WithMaxChars(200), WithOverlapChars(40))

	chunks := b.Split(domain.Document{ID: "url_0", Text: text})
	require.Greater(t, len(chunks), 1)

	for _, c := range chunks {
		assert.LessOrEqual(t, utf8.RuneCountInString(c.Text), 200,
			"chunk %d exceeds the size bound", c.ChunkID)
	}
}

// A single segment longer than maxChars is emitted whole, never split or
// truncated.
func TestBuilder_Split_OversizeSegment(t *testing.T) {
	big := strings.Repeat("x", 100)
	b := NewBuilder(WithMaxChars(20), WithOverlapChars(5))

	chunks := b.Split(domain.Document{ID: "pdf_0", Text: big})
	require.Len(t, chunks, 1)
	assert.Equal(t, big, chunks[0].Text)
	assert.Equal(t, 0, chunks[0].StartChar)
	assert.Equal(t, 100, chunks[0].EndChar)
}

// Character accounting is in runes: six Cyrillic letters count as six,
// not twelve bytes, so both segments fit one chunk at maxChars=10.
func TestBuilder_Split_CountsRunes(t *testing.T) {
	b := NewBuilder(WithMaxChars(10), WithOverlapChars(3))

	chunks := b.Split(domain.Document{ID: "pdf_0", Text: "привет\nмир"})
	require.Len(t, chunks, 1)
	assert.Equal(t, "привет\nмир", chunks[0].Text)
	assert.Equal(t, 10, chunks[0].EndChar)
}

// Chunk IDs keep increasing across documents split by the same builder;
// StartChar restarts per document.
func TestBuilder_Split_GlobalIDs(t *testing.T) {
	b := NewBuilder(WithMaxChars(30), WithOverlapChars(5))
	text := strings.Repeat("Campus housing is limited. ", 10)

	first := b.Split(domain.Document{ID: "pdf_0", Text: text})
	second := b.Split(domain.Document{ID: "pdf_1", Text: text})
	require.NotEmpty(t, first)
	require.NotEmpty(t, second)

	all := append(append([]domain.Chunk{}, first...), second...)
	for i, c := range all {
		assert.Equal(t, i, c.ChunkID)
	}
	assert.Equal(t, len(all), b.NextID())
	assert.Equal(t, 0, second[0].StartChar)
}

func TestBuilder_Split_EmptyDocument(t *testing.T) {
	b := NewBuilder()
	assert.Nil(t, b.Split(domain.Document{ID: "pdf_0", Text: "  \n "}))
}
