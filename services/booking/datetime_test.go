package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday, September 15, 2025.
var anchor = time.Date(2025, time.September, 15, 10, 30, 0, 0, time.UTC)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveDateRelative(t *testing.T) {
	tests := []struct {
		name   string
		phrase string
		want   time.Time
	}{
		{name: "today", phrase: "today please", want: day(2025, time.September, 15)},
		{name: "tomorrow", phrase: "Tomorrow", want: day(2025, time.September, 16)},
		{name: "next week", phrase: "sometime next week", want: day(2025, time.September, 22)},
		{name: "upcoming weekday", phrase: "on friday", want: day(2025, time.September, 19)},
		{name: "same weekday rolls a week ahead", phrase: "monday", want: day(2025, time.September, 22)},
		{name: "weekday is case insensitive", phrase: "Next Wednesday", want: day(2025, time.September, 17)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveDate(tt.phrase, anchor)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveDateExplicit(t *testing.T) {
	tests := []struct {
		name   string
		phrase string
		want   time.Time
	}{
		{name: "iso date", phrase: "2025-09-25", want: day(2025, time.September, 25)},
		{name: "us slash date", phrase: "09/25/2025", want: day(2025, time.September, 25)},
		{name: "day-first slash date", phrase: "25/09", want: day(2025, time.September, 25)},
		{name: "day-first slash date with year", phrase: "25/09/2025", want: day(2025, time.September, 25)},
		{name: "month name with ordinal", phrase: "September 25th", want: day(2025, time.September, 25)},
		{name: "month name with year", phrase: "September 25, 2025", want: day(2025, time.September, 25)},
		{name: "day before month", phrase: "25 September", want: day(2025, time.September, 25)},
		{name: "abbreviated month", phrase: "Sep 25", want: day(2025, time.September, 25)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveDate(tt.phrase, anchor)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveDateRejections(t *testing.T) {
	for _, phrase := range []string{"whenever", "the 32nd", "January 2"} {
		t.Run(phrase, func(t *testing.T) {
			_, err := ResolveDate(phrase, anchor)
			var unparseable *UnparseableDateError
			require.ErrorAs(t, err, &unparseable)
		})
	}
}

func TestResolveTime(t *testing.T) {
	tests := []struct {
		name    string
		phrase  string
		want    string
		wantErr bool
	}{
		{name: "clock with am", phrase: "10:00 AM", want: "10:00"},
		{name: "clock with pm", phrase: "2:30 pm", want: "14:30"},
		{name: "bare hour pm", phrase: "3pm", want: "15:00"},
		{name: "noon stays noon", phrase: "12pm", want: "12:00"},
		{name: "midnight", phrase: "12am", want: "00:00"},
		{name: "bare digit resolves literally", phrase: "10", want: "10:00"},
		{name: "no digits no token", phrase: "sometime in the morning", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveTime(tt.phrase)
			if tt.wantErr {
				var unparseable *UnparseableTimeError
				require.ErrorAs(t, err, &unparseable)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// A bare "2" resolves through the clock pattern to 02:00, which is outside the
// slot grid; the dialog re-prompts rather than silently booking 2 PM.
func TestResolveTimeBareTwoIsNotOnGrid(t *testing.T) {
	got, err := ResolveTime("2")
	require.NoError(t, err)
	assert.Equal(t, "02:00", got)
	assert.False(t, InGrid(got))
}
