package survival

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTimeFormat is returned by ParseClock for anything that is not m:ss.
var ErrInvalidTimeFormat = errors.New("invalid time format")

// FormatClock renders whole seconds as m:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// ParseClock parses an m:ss survival time into seconds. Minutes may have any
// number of digits; seconds must be exactly two digits below 60.
func ParseClock(s string) (int, error) {
	mm, ss, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || !allDigits(mm) || len(ss) != 2 || !allDigits(ss) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	seconds, _ := strconv.Atoi(ss)
	if seconds >= 60 {
		return 0, fmt.Errorf("%w: %q: seconds out of range", ErrInvalidTimeFormat, s)
	}
	return minutes*60 + seconds, nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
