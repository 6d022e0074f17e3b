package gcalendar

// DefaultCalendarID is used when a request leaves the calendar empty.
const DefaultCalendarID = "primary"

// dateLayout is the all-day date format of the Calendar API.
const dateLayout = "2006-01-02"

// DueDateEvent describes an all-day event mirroring a task due date.
type DueDateEvent struct {
	CalendarID  string
	Summary     string
	Description string
	Date        string // YYYY-MM-DD
}

// Event is what the Calendar API reports back for a created event.
type Event struct {
	ID       string
	Summary  string
	HTMLLink string
	Date     string
}
