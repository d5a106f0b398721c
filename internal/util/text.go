package util

import (
	"regexp"
	"strings"
)

var (
	trademarks = strings.NewReplacer("®", "", "™", "")
	reSpaces   = regexp.MustCompile(`\s+`)
)

// CleanModelName strips a manufacturer prefix and trademark glyphs from a
// vendor model string. "AMD Ryzen™ 5 3600" becomes "Ryzen 5 3600".
func CleanModelName(name string, manufacturers ...string) string {
	s := name
	for _, m := range manufacturers {
		s = strings.ReplaceAll(s, m, "")
	}
	s = trademarks.Replace(s)
	return NormalizeSpaces(s)
}

func NormalizeSpaces(input string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(input, " "))
}
