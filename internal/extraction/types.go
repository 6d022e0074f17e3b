package extraction

// MaxSummaryLength is the maximum number of characters kept in Task.Summary.
const MaxSummaryLength = 120

// Task is a candidate action item pulled out of a transcript.
type Task struct {
	Summary     string `json:"summary"`
	Description string `json:"description"`
	DueDate     string `json:"due_date,omitempty"` // YYYY-MM-DD
}

// HasDueDate reports whether a relative date phrase was recognised.
func (t Task) HasDueDate() bool {
	return t.DueDate != ""
}
