package util

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseWatts turns a vendor TDP cell into watts. Unit suffixes and "+" markers
// are dropped; a "low-high" range resolves to the midpoint of its bounds.
func ParseWatts(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "W", "")
	s = strings.ReplaceAll(s, "+", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty TDP value %q", raw)
	}

	if low, high, ok := strings.Cut(s, "-"); ok {
		lo, err := strconv.ParseFloat(strings.TrimSpace(low), 64)
		if err != nil {
			return 0, fmt.Errorf("bad TDP range %q: %w", raw, err)
		}
		hi, err := strconv.ParseFloat(strings.TrimSpace(high), 64)
		if err != nil {
			return 0, fmt.Errorf("bad TDP range %q: %w", raw, err)
		}
		return (lo + hi) / 2.0, nil
	}

	watts, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad TDP value %q: %w", raw, err)
	}
	return watts, nil
}

// ParseCount parses a core or thread count. Some exports carry counts as
// floats ("80.0"), so the value is parsed as a float and truncated.
func ParseCount(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("empty count value %q", raw)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad count value %q: %w", raw, err)
	}
	if f < 0 {
		return 0, fmt.Errorf("negative count value %q", raw)
	}
	return int(f), nil
}
