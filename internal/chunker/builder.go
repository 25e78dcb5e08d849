// Package chunker splits documents into bounded, overlapping chunks for
// retrieval indexing.
package chunker

import (
	"strings"
	"unicode/utf8"

	"github.com/admitlab/admit-cli/internal/core/domain"
)

// DefaultMaxChars is the default chunk size in characters.
const DefaultMaxChars = 1600

// DefaultOverlapChars is the default trailing overlap carried between
// consecutive chunks.
const DefaultOverlapChars = 250

// Builder greedily packs segments into chunks with a carried overlap.
//
// Character counts are Unicode code points, not bytes: the corpus is
// largely Cyrillic and byte slicing would cut runes in half.
//
// The builder is stateful: chunk IDs increase from 0 across every
// document split by the same builder, so one builder serves one indexing
// run. It is not safe for concurrent use; the pipeline is sequential.
type Builder struct {
	maxChars     int
	overlapChars int
	nextID       int
}

// Option configures the builder.
type Option func(*Builder)

// WithMaxChars sets the chunk size in characters.
func WithMaxChars(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.maxChars = n
		}
	}
}

// WithOverlapChars sets the overlap between chunks in characters.
func WithOverlapChars(n int) Option {
	return func(b *Builder) {
		if n >= 0 {
			b.overlapChars = n
		}
	}
}

// NewBuilder creates a chunk builder with the given options.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		maxChars:     DefaultMaxChars,
		overlapChars: DefaultOverlapChars,
	}

	for _, opt := range opts {
		opt(b)
	}

	// Ensure overlap doesn't exceed chunk size
	if b.overlapChars >= b.maxChars {
		b.overlapChars = b.maxChars / 4
	}

	return b
}

// NextID returns the chunk ID the next emitted chunk will receive.
// After a full run this is the total number of chunks produced.
func (b *Builder) NextID() int {
	return b.nextID
}

// Split chunks one document. Segments are packed greedily: each segment
// joins the current buffer while the joined length stays within maxChars;
// otherwise the buffer is flushed as a chunk and the last overlapChars
// characters of it seed the next buffer.
//
// Behaviour that looks odd but is intentional:
//   - a single segment longer than maxChars is emitted whole, never split
//     or truncated;
//   - the carried tail is cut on raw characters, so it may start
//     mid-segment;
//   - EndChar is StartChar plus the buffer length, so once overlap text
//     has been prepended the offsets drift from true source positions.
func (b *Builder) Split(doc domain.Document) []domain.Chunk {
	segs := Segments(doc.Text)
	if len(segs) == 0 {
		return nil
	}

	var chunks []domain.Chunk

	emit := func(text string, start, end int) {
		chunks = append(chunks, domain.Chunk{
			ChunkID:   b.nextID,
			DocID:     doc.ID,
			Source:    doc.Source,
			Title:     doc.Title,
			Type:      doc.Type,
			Text:      text,
			StartChar: start,
			EndChar:   end,
		})
		b.nextID++
	}

	buf := ""
	start := 0

	for _, seg := range segs {
		if buf == "" {
			buf = seg
			continue
		}

		// +1 accounts for the joining newline.
		if runeLen(buf)+1+runeLen(seg) <= b.maxChars {
			buf += "\n" + seg
			continue
		}

		end := start + runeLen(buf)
		emit(buf, start, end)

		tail := overlapTail(buf, b.overlapChars)
		start = end - runeLen(tail)
		if start < 0 {
			start = 0
		}
		buf = tail + "\n" + seg
	}

	if strings.TrimSpace(buf) != "" {
		emit(buf, start, start+runeLen(buf))
	}

	return chunks
}

// overlapTail returns the last n characters of buf, or all of buf when it
// is no longer than n.
func overlapTail(buf string, n int) string {
	r := []rune(buf)
	if len(r) <= n {
		return buf
	}
	return string(r[len(r)-n:])
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
