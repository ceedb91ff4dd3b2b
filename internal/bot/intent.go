package bot

import (
	"regexp"
	"strings"
)

// Intent classifies what an utterance asks the bot to do.
type Intent int

// Intents, in routing priority order.
const (
	IntentUnrecognized Intent = iota
	IntentQueryToday
	IntentQueryDate
	IntentQueryMonth
	IntentRecordExpense
)

// String returns the intent tag.
func (i Intent) String() string {
	switch i {
	case IntentQueryToday:
		return "query_today"
	case IntentQueryDate:
		return "query_date"
	case IntentQueryMonth:
		return "query_month"
	case IntentRecordExpense:
		return "record_expense"
	default:
		return "unrecognized"
	}
}

// Routed is the outcome of classifying one utterance.
type Routed struct {
	Intent Intent
	// Token carries the raw date or month token for the query intents.
	// Empty for "bulan ini".
	Token string
	// Entries carries the parsed expenses for IntentRecordExpense.
	Entries []Entry
}

// intentRule pairs a matcher with the intent it produces. The matcher gets
// both a lower-cased copy (for phrase and pattern matching) and the original
// text (so recorded descriptions keep their case).
type intentRule struct {
	name  string
	match func(lower, original string) *Routed
}

var todayPhrases = []string{"pengeluaran hari ini", "hari ini", "total hari ini"}

var (
	dateQueryRegex  = regexp.MustCompile(`(?:pengeluaran\s+)?tanggal\s+(\d{1,2}(?:[-/]\d{1,2}(?:[-/]\d{2,4})?)?)`)
	monthQueryRegex = regexp.MustCompile(`(?:pengeluaran\s+)?bulan\s+(?:ini|(\d{1,2}(?:[-/]\d{2,4})?))`)
)

// intentRules is evaluated in order; the first rule that matches wins, even
// when a later rule would also match.
var intentRules = []intentRule{
	{
		name: "query_today",
		match: func(lower, _ string) *Routed {
			for _, phrase := range todayPhrases {
				if strings.Contains(lower, phrase) {
					return &Routed{Intent: IntentQueryToday}
				}
			}
			return nil
		},
	},
	{
		name: "query_date",
		match: func(lower, _ string) *Routed {
			m := dateQueryRegex.FindStringSubmatch(lower)
			if m == nil {
				return nil
			}
			return &Routed{Intent: IntentQueryDate, Token: m[1]}
		},
	},
	{
		name: "query_month",
		match: func(lower, _ string) *Routed {
			m := monthQueryRegex.FindStringSubmatch(lower)
			if m == nil {
				return nil
			}
			return &Routed{Intent: IntentQueryMonth, Token: m[1]}
		},
	},
	{
		name: "record_expense",
		match: func(_, original string) *Routed {
			entries := ParseExpenses(original)
			if len(entries) == 0 {
				return nil
			}
			return &Routed{Intent: IntentRecordExpense, Entries: entries}
		},
	},
}

// Route classifies an utterance by walking the rule list in order.
func Route(text string) Routed {
	lower := strings.ToLower(text)
	for _, rule := range intentRules {
		if r := rule.match(lower, text); r != nil {
			return *r
		}
	}
	return Routed{Intent: IntentUnrecognized}
}
