package bot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Reference instant for resolver tests: 5 December 2025.
var dateTestNow = time.Date(2025, time.December, 5, 10, 0, 0, 0, time.UTC)

func TestResolveDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		token   string
		now     time.Time
		want    time.Time
		wantErr error
	}{
		{
			name:  "bare day in the past stays in current month",
			token: "3",
			now:   dateTestNow,
			want:  time.Date(2025, time.December, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "bare day equal to today",
			token: "5",
			now:   dateTestNow,
			want:  time.Date(2025, time.December, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "bare day in the future rolls to previous month",
			token: "28",
			now:   dateTestNow,
			want:  time.Date(2025, time.November, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "rollover crosses the year boundary",
			token: "28",
			now:   time.Date(2026, time.January, 5, 10, 0, 0, 0, time.UTC),
			want:  time.Date(2025, time.December, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "rollover lands on a day the previous month lacks",
			token:   "30",
			now:     time.Date(2025, time.March, 5, 10, 0, 0, 0, time.UTC),
			wantErr: ErrInvalidDate,
		},
		{
			name:  "day and month",
			token: "7-12",
			now:   dateTestNow,
			want:  time.Date(2025, time.December, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "slash separator",
			token: "7/12",
			now:   dateTestNow,
			want:  time.Date(2025, time.December, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "full date",
			token: "7-12-2025",
			now:   dateTestNow,
			want:  time.Date(2025, time.December, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "two digit year means 2000s",
			token: "7-12-25",
			now:   dateTestNow,
			want:  time.Date(2025, time.December, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "mixed separators",
			token: "7/12-25",
			now:   dateTestNow,
			want:  time.Date(2025, time.December, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "nonexistent calendar date",
			token:   "31-2",
			now:     dateTestNow,
			wantErr: ErrInvalidDate,
		},
		{
			name:    "day out of range",
			token:   "32",
			now:     dateTestNow,
			wantErr: ErrInvalidDate,
		},
		{
			name:    "month out of range",
			token:   "7-13",
			now:     dateTestNow,
			wantErr: ErrInvalidDate,
		},
		{
			name:    "zero day",
			token:   "0",
			now:     dateTestNow,
			wantErr: ErrInvalidDate,
		},
		{
			name:    "not a number",
			token:   "abc",
			now:     dateTestNow,
			wantErr: ErrInvalidDate,
		},
		{
			name:    "too many parts",
			token:   "7-12-2025-1",
			now:     dateTestNow,
			wantErr: ErrInvalidDate,
		},
		{
			name:    "empty token",
			token:   "",
			now:     dateTestNow,
			wantErr: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ResolveDate(tt.token, tt.now)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestResolveMonth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		token     string
		wantYear  int
		wantMonth time.Month
		wantErr   error
	}{
		{
			name:      "empty means current month",
			token:     "",
			wantYear:  2025,
			wantMonth: time.December,
		},
		{
			name:      "ini means current month",
			token:     "ini",
			wantYear:  2025,
			wantMonth: time.December,
		},
		{
			name:      "numeric month",
			token:     "7",
			wantYear:  2025,
			wantMonth: time.July,
		},
		{
			name:      "month with year",
			token:     "7-2024",
			wantYear:  2024,
			wantMonth: time.July,
		},
		{
			name:      "two digit year",
			token:     "7-24",
			wantYear:  2024,
			wantMonth: time.July,
		},
		{
			name:      "slash separator",
			token:     "7/2024",
			wantYear:  2024,
			wantMonth: time.July,
		},
		{
			name:    "month thirteen",
			token:   "13",
			wantErr: ErrInvalidMonth,
		},
		{
			name:    "month zero",
			token:   "0",
			wantErr: ErrInvalidMonth,
		},
		{
			name:    "not a number",
			token:   "abc",
			wantErr: ErrInvalidMonth,
		},
		{
			name:    "too many parts",
			token:   "7-2024-1",
			wantErr: ErrInvalidMonth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			year, month, err := ResolveMonth(tt.token, dateTestNow)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantYear, year)
			require.Equal(t, tt.wantMonth, month)
		})
	}
}

// Month range failures and calendar failures carry distinct sentinels so
// replies can name the right shape.
func TestResolverSentinelsAreDistinct(t *testing.T) {
	t.Parallel()

	_, err := ResolveDate("31-2", dateTestNow)
	require.ErrorIs(t, err, ErrInvalidDate)
	require.NotErrorIs(t, err, ErrInvalidMonth)

	_, _, err = ResolveMonth("13", dateTestNow)
	require.ErrorIs(t, err, ErrInvalidMonth)
	require.NotErrorIs(t, err, ErrInvalidDate)
}
