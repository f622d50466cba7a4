// Package dates resolves symbolic date tokens ("today", "friday") into a
// concrete day offset and display layout.
package dates

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// LayoutISO is the layout used for date components in note filenames.
	LayoutISO = "2006-01-02"
)

// ErrInvalidToken reports an unknown date token.
var ErrInvalidToken = errors.New("invalid date token")

// Resolved is a date token resolved against a reference time: a signed day
// offset relative to that time and the layout to render the date with.
type Resolved struct {
	Offset int
	Layout string
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Choices returns the accepted date tokens, relative tokens first.
func Choices() []string {
	return []string{
		"today", "tomorrow", "yesterday",
		"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	}
}

// Resolve maps a date token to its day offset and layout. Weekday tokens
// resolve to the upcoming occurrence, with the current day counting as
// offset 0. The result depends only on (choice, now).
func Resolve(choice string, now time.Time) (Resolved, error) {
	token := strings.ToLower(strings.TrimSpace(choice))
	switch token {
	case "today":
		return Resolved{Offset: 0, Layout: LayoutISO}, nil
	case "tomorrow":
		return Resolved{Offset: 1, Layout: LayoutISO}, nil
	case "yesterday":
		return Resolved{Offset: -1, Layout: LayoutISO}, nil
	}
	if target, ok := weekdays[token]; ok {
		offset := (int(target) - int(now.Weekday()) + 7) % 7
		return Resolved{Offset: offset, Layout: LayoutISO}, nil
	}
	return Resolved{}, fmt.Errorf("%w: %q", ErrInvalidToken, choice)
}

// Apply renders the resolved date relative to now.
func (r Resolved) Apply(now time.Time) string {
	return now.AddDate(0, 0, r.Offset).Format(r.Layout)
}
