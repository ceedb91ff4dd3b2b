package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Validation failures the date resolver reports. Month-range errors stay
// distinct from calendar-date errors so replies can name the right shape.
var (
	ErrInvalidDate  = errors.New("invalid date")
	ErrInvalidMonth = errors.New("invalid month")
)

// ResolveDate resolves a day token against the reference instant now.
// Accepted shapes: "D", "D-M", "D-M-Y" (separators "-" or "/"). A bare day
// greater than today's day-of-month refers to the month that just ended.
// A two-digit year means 2000+Y.
func ResolveDate(token string, now time.Time) (time.Time, error) {
	token = strings.ReplaceAll(strings.TrimSpace(token), "/", "-")
	parts := strings.Split(token, "-")

	switch len(parts) {
	case 1:
		day, err := strconv.Atoi(parts[0])
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, token)
		}
		ref := now
		if day > now.Day() {
			// Last day of the previous month carries its year and month.
			ref = now.AddDate(0, 0, -now.Day())
		}
		return makeDate(ref.Year(), ref.Month(), day)

	case 2:
		day, err1 := strconv.Atoi(parts[0])
		month, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, token)
		}
		return makeDate(now.Year(), time.Month(month), day)

	case 3:
		day, err1 := strconv.Atoi(parts[0])
		month, err2 := strconv.Atoi(parts[1])
		year, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, token)
		}
		if year < 100 {
			year += 2000
		}
		return makeDate(year, time.Month(month), day)

	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, token)
	}
}

// ResolveMonth resolves a month token ("M" or "M-Y") against now. An empty
// token means the current month.
func ResolveMonth(token string, now time.Time) (int, time.Month, error) {
	token = strings.ReplaceAll(strings.TrimSpace(token), "/", "-")
	if token == "" || token == "ini" {
		return now.Year(), now.Month(), nil
	}

	parts := strings.Split(token, "-")
	if len(parts) > 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidMonth, token)
	}

	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidMonth, token)
	}
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}

	year := now.Year()
	if len(parts) == 2 {
		year, err = strconv.Atoi(parts[1])
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidMonth, token)
		}
		if year < 100 {
			year += 2000
		}
	}

	return year, time.Month(month), nil
}

// makeDate validates by construction: time.Date normalizes out-of-range
// values, so a round-trip mismatch means the calendar date does not exist.
func makeDate(year int, month time.Month, day int) (time.Time, error) {
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, int(month), day)
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, int(month), day)
	}
	return t, nil
}
