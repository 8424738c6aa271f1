package calendar

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Event is one row of the CalendarEvents tab. Dates are YYYY-MM-DD strings,
// parsed as local dates so a timezone offset never shifts the displayed day.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Link        string `json:"link"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// Header is the fixed column order of the CalendarEvents tab.
var Header = []string{"id", "title", "description", "imageUrl", "link", "startDate", "endDate"}

// MapRow matches cells to the header row by position; every field is a plain
// string.
func MapRow(header []string, row []interface{}) Event {
	var e Event
	for i, key := range header {
		value := cellString(row, i)
		switch key {
		case "id":
			e.ID = value
		case "title":
			e.Title = value
		case "description":
			e.Description = value
		case "imageUrl":
			e.ImageURL = value
		case "link":
			e.Link = value
		case "startDate":
			e.StartDate = value
		case "endDate":
			e.EndDate = value
		}
	}
	return e
}

// Row serializes the event in Header order for a full-table rewrite.
func (e Event) Row() []interface{} {
	return []interface{}{e.ID, e.Title, e.Description, e.ImageURL, e.Link, e.StartDate, e.EndDate}
}

// ParseLocalDate parses YYYY-MM-DD in the local timezone.
func ParseLocalDate(s string) (time.Time, bool) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Upcoming drops events whose end date is strictly before today (events
// ending today stay visible) and sorts the rest ascending by start date.
// Events with an unparseable end date are dropped too.
func Upcoming(events []Event, now time.Time) []Event {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	out := make([]Event, 0, len(events))
	for _, e := range events {
		end, ok := ParseLocalDate(e.EndDate)
		if !ok || end.Before(today) {
			continue
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		si, _ := ParseLocalDate(out[i].StartDate)
		sj, _ := ParseLocalDate(out[j].StartDate)
		return si.Before(sj)
	})
	return out
}

func cellString(row []interface{}, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	if s, ok := row[i].(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(row[i]))
}
