package booking

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// weekdays maps spoken day names onto time.Weekday.
var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// weekdayOrder fixes the iteration order over weekdays so phrase matching is
// deterministic when a phrase mentions more than one day.
var weekdayOrder = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

var ordinalRe = regexp.MustCompile(`(\d{1,2})(st|nd|rd|th)\b`)

// looseDateLayouts are tried in order when the phrase is not a relative
// expression. Layouts without a year resolve against the current year.
// Month-first numerics are tried before day-first, so "25/09" falls through
// to the day-first layouts only because 25 is not a valid month.
var looseDateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"2/1/2006",
	"2/1",
	"January 2, 2006",
	"January 2 2006",
	"January 2",
	"2 January 2006",
	"2 January",
	"Jan 2, 2006",
	"Jan 2 2006",
	"Jan 2",
	"2 Jan",
}

// ResolveDate converts a natural-language date phrase into a calendar date at or
// after today. Matching runs in priority order: today, tomorrow, next week, a
// weekday name (next occurrence strictly after today), then loose date parsing.
func ResolveDate(phrase string, today time.Time) (time.Time, error) {
	today = truncateToDay(today)
	lowered := strings.ToLower(strings.TrimSpace(phrase))

	switch {
	case strings.Contains(lowered, "today"):
		return today, nil
	case strings.Contains(lowered, "tomorrow"):
		return today.AddDate(0, 0, 1), nil
	case strings.Contains(lowered, "next week"):
		return today.AddDate(0, 0, 7), nil
	}

	for _, name := range weekdayOrder {
		if !strings.Contains(lowered, name) {
			continue
		}
		daysAhead := (int(weekdays[name]) - int(today.Weekday()) + 7) % 7
		if daysAhead == 0 {
			// Today is that weekday: roll to next week.
			daysAhead = 7
		}
		return today.AddDate(0, 0, daysAhead), nil
	}

	cleaned := ordinalRe.ReplaceAllString(lowered, "$1")
	for _, layout := range looseDateLayouts {
		parsed, err := time.Parse(layout, cleaned)
		if err != nil {
			continue
		}
		year := parsed.Year()
		if year == 0 {
			year = today.Year()
		}
		date := time.Date(year, parsed.Month(), parsed.Day(), 0, 0, 0, 0, today.Location())
		if !date.Before(today) {
			return date, nil
		}
	}
	return time.Time{}, &UnparseableDateError{Phrase: phrase}
}

var clockRe = regexp.MustCompile(`(\d{1,2}):?(\d{0,2})\s*(am|pm)?`)

// timeTokens maps bare-hour shorthands onto the canonical slot labels.
var timeTokens = map[string]string{
	"9": "09:00", "10": "10:00", "11": "11:00",
	"2": "14:00", "3": "15:00", "4": "16:00", "5": "17:00",
	"9am": "09:00", "10am": "10:00", "11am": "11:00",
	"2pm": "14:00", "3pm": "15:00", "4pm": "16:00", "5pm": "17:00",
}

// ResolveTime converts a time phrase into a canonical HH:MM label: a numeric
// H[:MM][am|pm] pattern with 12-to-24-hour conversion first, then the fixed token
// table.
func ResolveTime(phrase string) (string, error) {
	lowered := strings.ToLower(strings.TrimSpace(phrase))

	if m := clockRe.FindStringSubmatch(lowered); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		switch m[3] {
		case "pm":
			if hour < 12 {
				hour += 12
			}
		case "am":
			if hour == 12 {
				hour = 0
			}
		}
		return fmt.Sprintf("%02d:%02d", hour, minute), nil
	}

	if label, ok := timeTokens[strings.ReplaceAll(lowered, " ", "")]; ok {
		return label, nil
	}
	return "", &UnparseableTimeError{Phrase: phrase}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
