package pdf

import (
	"math"
	"strings"
	"unicode/utf8"
)

const (
	// minPagesForStripping is the smallest document that gives enough
	// evidence to call a line a repeating header or footer.
	minPagesForStripping = 3

	// candidateLines is how many lines at each page edge are considered.
	candidateLines = 2

	// maxBoilerplateLen is the longest line (in runes) that can count as
	// boilerplate. Longer lines are almost always body text.
	maxBoilerplateLen = 80

	// repeatFraction of pages a line must appear on to be stripped.
	repeatFraction = 0.7
)

// StripRepeatingLines removes lines that repeat at the top or bottom of
// most pages, such as document titles and page footers that pdftotext
// emits on every page. Documents shorter than three pages are returned
// unchanged. Header and footer occurrences are counted separately, so a
// line stripped from page tops is not automatically stripped from
// bottoms.
func StripRepeatingLines(pages []string) []string {
	if len(pages) < minPagesForStripping {
		return pages
	}

	headers := make(map[string]int)
	footers := make(map[string]int)
	for _, page := range pages {
		lines := nonEmptyLines(page)
		for i := 0; i < candidateLines && i < len(lines); i++ {
			if utf8.RuneCountInString(lines[i]) <= maxBoilerplateLen {
				headers[lines[i]]++
			}
		}
		for i := 0; i < candidateLines && i < len(lines); i++ {
			line := lines[len(lines)-1-i]
			if utf8.RuneCountInString(line) <= maxBoilerplateLen {
				footers[line]++
			}
		}
	}

	threshold := int(math.Ceil(repeatFraction * float64(len(pages))))
	if threshold < 2 {
		threshold = 2
	}

	out := make([]string, len(pages))
	for i, page := range pages {
		out[i] = stripPage(page, headers, footers, threshold)
	}
	return out
}

// stripPage drops up to candidateLines repeating lines from each edge of
// a single page, one line at a time from the outside in. Stripping stops
// at the first non-repeating line.
func stripPage(page string, headers, footers map[string]int, threshold int) string {
	lines := strings.Split(page, "\n")

	for removed := 0; removed < candidateLines; removed++ {
		idx := firstNonEmpty(lines)
		if idx < 0 || headers[strings.TrimSpace(lines[idx])] < threshold {
			break
		}
		lines = append(lines[:idx], lines[idx+1:]...)
	}

	for removed := 0; removed < candidateLines; removed++ {
		idx := lastNonEmpty(lines)
		if idx < 0 || footers[strings.TrimSpace(lines[idx])] < threshold {
			break
		}
		lines = append(lines[:idx], lines[idx+1:]...)
	}

	return strings.Join(lines, "\n")
}

func nonEmptyLines(page string) []string {
	var out []string
	for _, line := range strings.Split(page, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func firstNonEmpty(lines []string) int {
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			return i
		}
	}
	return -1
}

func lastNonEmpty(lines []string) int {
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) != "" {
			return i
		}
	}
	return -1
}
