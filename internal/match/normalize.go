package match

import (
	"regexp"
	"strings"
)

// Normalize prepares a name for comparison: lowercase, underscores to
// spaces, collapsed whitespace. Inventory exports often carry underscores
// where the bot stores spaces ("med_99" vs "med 99").
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "_", " ")
	return collapseSpaces(s)
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func wordSet(s string) map[string]struct{} {
	f := strings.Fields(s)
	m := make(map[string]struct{}, len(f))
	for _, w := range f {
		m[w] = struct{}{}
	}
	return m
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

var reDigitRun = regexp.MustCompile(`[0-9]+`)

// digitRuns extracts maximal digit sequences ("amox 250mg x20" -> 250, 20).
func digitRuns(s string) []string {
	return reDigitRun.FindAllString(s, -1)
}
