package normalisers

import (
	"regexp"
	"strings"
)

var (
	spaceRuns   = regexp.MustCompile(`[ \t]+`)
	newlineRuns = regexp.MustCompile(`\n{3,}`)
)

// NormaliseSpace canonicalises whitespace in extracted text: non-breaking
// spaces become plain spaces, runs of spaces and tabs collapse to one, and
// three or more consecutive newlines squeeze to a blank line. The result
// is trimmed.
func NormaliseSpace(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = spaceRuns.ReplaceAllString(s, " ")
	s = newlineRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
