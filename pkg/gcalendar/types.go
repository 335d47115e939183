package gcalendar

import "time"

const (
	// DefaultHolidayCalendarID is Google's public calendar of Dutch holidays.
	DefaultHolidayCalendarID = "nl.dutch#holiday@group.v.calendar.google.com"
	// DefaultTokenPath is where OAuth tokens are read from and written to.
	DefaultTokenPath = "token.json"
)

// ListHolidaysRequest is the input for listing holidays in a window.
type ListHolidaysRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	Location   *time.Location
	MaxResults int64
}

// Holiday is a single all-day entry of a holiday calendar.
type Holiday struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
}
