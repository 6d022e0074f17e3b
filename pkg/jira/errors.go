package jira

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingCredentials is returned by NewClient when any credential is empty.
	ErrMissingCredentials = errors.New("missing jira credentials")
	// ErrEmptySummary is returned by CreateIssue before any network call.
	ErrEmptySummary = errors.New("issue summary is required")
)

// Validate reports every empty credential field at once.
func (c Credentials) Validate() error {
	var missing []string
	if strings.TrimSpace(c.BaseURL) == "" {
		missing = append(missing, "base_url")
	}
	if strings.TrimSpace(c.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(c.APIToken) == "" {
		missing = append(missing, "api_token")
	}
	if strings.TrimSpace(c.ProjectKey) == "" {
		missing = append(missing, "project_key")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingCredentials, strings.Join(missing, ", "))
	}
	return nil
}

// IsAPIError reports whether err carries a Jira rejection and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
