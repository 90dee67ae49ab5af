package datetime

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const registrationLayout = "02/01/2006 15:04"

// ErrInvalidRegistration reports input that is not in DD/MM/YYYY HH:MM form.
var ErrInvalidRegistration = errors.New("invalid registration time")

// FormatRegistration renders t as dd/MM/yyyy HH:mm in loc (time.Local when nil).
func FormatRegistration(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(registrationLayout)
}

// ParseRegistration parses a dd/MM/yyyy HH:mm string in loc. An empty input
// returns the zero time, which lets the store stamp the registration itself.
func ParseRegistration(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(registrationLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %w", ErrInvalidRegistration, s, err)
	}
	return t, nil
}
