package jira

import (
	"encoding/json"
	"fmt"
)

// IssueTypeTask is the only issue type this client files.
const IssueTypeTask = "Task"

// Credentials is everything needed to talk to one Jira project.
type Credentials struct {
	BaseURL    string
	Email      string
	APIToken   string
	ProjectKey string
}

// CreateIssueRequest describes one issue to file. Summary is required.
type CreateIssueRequest struct {
	Summary     string
	Description string
	DueDate     string // YYYY-MM-DD; omitted from the payload when empty
}

// Issue is the tracker's answer to a successful create call.
type Issue struct {
	ID   string          `json:"id"`
	Key  string          `json:"key"`
	Self string          `json:"self"`
	Raw  json.RawMessage `json:"-"` // response body exactly as received
}

// APIError is returned when Jira answers with a status >= 300.
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("jira create issue failed: %d %s", e.StatusCode, e.Body)
}

// ---- wire types ----

type createIssuePayload struct {
	Fields issueFields `json:"fields"`
}

type issueFields struct {
	Project     projectRef   `json:"project"`
	Summary     string       `json:"summary"`
	Description string       `json:"description"`
	IssueType   issueTypeRef `json:"issuetype"`
	DueDate     string       `json:"duedate,omitempty"`
}

type projectRef struct {
	Key string `json:"key"`
}

type issueTypeRef struct {
	Name string `json:"name"`
}
