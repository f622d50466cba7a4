// Package timeutil parses the compact trailing-window strings accepted by
// the listing commands.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultWindow is the fallback listing window used when none is provided.
	DefaultWindow = "1w"
)

var (
	segmentPattern = regexp.MustCompile(`^(\d+)([wdhms])`)
	unitMap        = map[string]time.Duration{
		"w": 7 * 24 * time.Hour,
		"d": 24 * time.Hour,
		"h": time.Hour,
		"m": time.Minute,
		"s": time.Second,
	}
)

// ParseWindow parses a compact window string (for example "1w", "3d", or
// "1w2d6h") into a duration. When the input is empty, the default window of
// one week is used.
func ParseWindow(input string) (time.Duration, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "" {
		trimmed = DefaultWindow
	}

	remaining := trimmed
	total := time.Duration(0)
	for len(remaining) > 0 {
		matches := segmentPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, fmt.Errorf("invalid window segment %q", remaining)
		}
		value, err := strconv.ParseInt(matches[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid window value %q: %w", matches[1], err)
		}
		total += time.Duration(value) * unitMap[matches[2]]
		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, fmt.Errorf("window must be greater than zero")
	}
	return total, nil
}
