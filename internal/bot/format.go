package bot

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// monthNames holds the Indonesian month names, indexed by time.Month.
var monthNames = [...]string{
	"",
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// MonthName returns the Indonesian name of a month.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthNames[m]
}

// FormatRupiah renders a non-negative whole-rupiah amount with the fixed
// "Rp " prefix and a period every three digits, e.g. "Rp 1.250.000".
// No fractional part is ever shown.
func FormatRupiah(amount int64) string {
	digits := strconv.FormatInt(amount, 10)

	var sb strings.Builder
	sb.WriteString("Rp ")

	pre := len(digits) % 3
	if pre > 0 {
		sb.WriteString(digits[:pre])
	}
	for i := pre; i < len(digits); i += 3 {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}

// FormatDateID renders a date like "7 Desember 2025".
func FormatDateID(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), MonthName(t.Month()), t.Year())
}

// escapeHTML escapes user text for Telegram HTML parse mode.
func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
