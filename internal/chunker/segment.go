package chunker

import (
	"strings"
	"unicode"
)

// Segments splits raw document text into ordered, trimmed, non-empty
// segments. A segment boundary is either a run of whitespace immediately
// following sentence-terminal punctuation (. ! ? :) or a run of line
// breaks. There is no semantic sentence detection: abbreviations and
// decimal numbers split too. Cheap and predictable beats clever here.
func Segments(text string) []string {
	var segs []string
	var buf strings.Builder

	flush := func() {
		if s := strings.TrimSpace(buf.String()); s != "" {
			segs = append(segs, s)
		}
		buf.Reset()
	}

	runes := []rune(text)
	// prev tracks the last rune carried into the current segment; it is
	// zero right after a boundary so a space cannot chain two splits.
	var prev rune

	for i := 0; i < len(runes); {
		r := runes[i]

		if unicode.IsSpace(r) && isTerminal(prev) {
			flush()
			for i < len(runes) && unicode.IsSpace(runes[i]) {
				i++
			}
			prev = 0
			continue
		}

		if r == '\n' {
			flush()
			for i < len(runes) && runes[i] == '\n' {
				i++
			}
			prev = 0
			continue
		}

		buf.WriteRune(r)
		prev = r
		i++
	}

	flush()
	return segs
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?' || r == ':'
}
