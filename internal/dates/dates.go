package dates

import (
	"fmt"
	"strings"
	"time"
)

const ISO = "2006-01-02"

const DefaultTimezone = "America/Argentina/Buenos_Aires"

// Normalize accepts either an ISO date (YYYY-MM-DD) or the day-first
// slash form used by the desktop era of this system (DD/MM/YYYY, with
// single-digit day/month and two-digit years tolerated) and returns the
// ISO form. Slash input is always read day-first; anything else is an
// error.
func Normalize(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", fmt.Errorf("empty date")
	}

	if strings.Contains(s, "/") {
		parts := strings.Split(s, "/")
		if len(parts) != 3 {
			return "", fmt.Errorf("invalid date %q", input)
		}
		day, month, year := pad2(parts[0]), pad2(parts[1]), parts[2]
		if len(year) == 2 {
			year = "20" + year
		}
		s = fmt.Sprintf("%s-%s-%s", year, month, day)
	}

	t, err := time.Parse(ISO, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q", input)
	}
	return t.Format(ISO), nil
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

// Today returns the current calendar date in the shop's timezone, ISO
// formatted.
func Today(tz string) string {
	return time.Now().In(Location(tz)).Format(ISO)
}
