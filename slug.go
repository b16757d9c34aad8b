package finplan

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var slugSeparators = regexp.MustCompile(`[^\p{L}\p{N}_\-]+`)

const maxSlugLen = 60

// Slugify turns a free text label into a file name friendly string. Runs of
// characters that are neither letters, digits, '_' nor '-' become a single
// '_'. The result is at most 60 characters long and defaults to "goal".
func Slugify(label string) string {
	s := slugSeparators.ReplaceAllString(norm.NFC.String(label), "_")
	s = strings.Trim(s, "_")
	if r := []rune(s); len(r) > maxSlugLen {
		s = string(r[:maxSlugLen])
	}
	if s == "" {
		return "goal"
	}
	return s
}
