package bot

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Entry is one parsed (description, amount) pair from an utterance.
type Entry struct {
	Description string
	Amount      int64
}

var (
	// segmentSplitRegex splits an utterance on commas, newlines, or a period
	// followed by whitespace. A period inside a number has no trailing
	// whitespace and never splits.
	segmentSplitRegex = regexp.MustCompile(`[,\n]|\.\s+`)

	// expenseRegex matches "description <amount>" where the amount may carry
	// an Rp prefix, thousand separators, and an rb/ribu/k suffix. The lazy
	// description keeps the numeric tail as far right as possible while
	// still letting descriptions contain digits ("gojek 2x 15000").
	expenseRegex = regexp.MustCompile(`(?i)^(.+?)\s+((?:rp\.?\s*)?(?:\d{1,3}(?:[.,]\d{3})*|\d+)\s*(?:rb|ribu|k)?)$`)

	currencyPrefixRegex = regexp.MustCompile(`(?i)^rp\.?\s*`)
	multiplierRegex     = regexp.MustCompile(`(?i)(rb|ribu|k)$`)
)

// NormalizeAmount turns a raw numeric token into whole rupiah. The token may
// carry an Rp prefix, "." or "," thousand separators, and an rb/ribu/k slang
// suffix multiplying by 1000. Returns false when the remainder is not all
// digits. Leading zeros parse as decimal.
func NormalizeAmount(token string) (int64, bool) {
	s := strings.TrimSpace(token)
	s = currencyPrefixRegex.ReplaceAllString(s, "")

	multiplier := int64(1)
	if loc := multiplierRegex.FindStringIndex(s); loc != nil {
		multiplier = 1000
		s = strings.TrimSpace(s[:loc[0]])
	}

	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	if n > math.MaxInt64/multiplier {
		return 0, false
	}
	return n * multiplier, true
}

// ParseExpenses extracts (description, amount) entries from one utterance.
// The whole utterance is consumed before anything is recorded; segments that
// do not look like an expense are dropped without error, so a batch with one
// bad item still records the rest.
func ParseExpenses(text string) []Entry {
	var entries []Entry
	for _, segment := range segmentSplitRegex.Split(text, -1) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		m := expenseRegex.FindStringSubmatch(segment)
		if m == nil {
			continue
		}

		amount, ok := NormalizeAmount(m[2])
		if !ok || amount <= 0 {
			continue
		}

		entries = append(entries, Entry{
			Description: strings.TrimSpace(m[1]),
			Amount:      amount,
		})
	}
	return entries
}
