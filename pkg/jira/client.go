package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const createIssuePath = "/rest/api/3/issue"

// Client is the HTTP wrapper for the Jira Cloud REST API v3.
type Client struct {
	baseURL    string
	email      string
	apiToken   string
	projectKey string
	httpClient *http.Client
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient validates creds and returns a ready client. It never returns a
// partially configured client.
func NewClient(creds Credentials, opts ...Option) (*Client, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(creds.BaseURL), "/"),
		email:      creds.Email,
		apiToken:   creds.APIToken,
		projectKey: creds.ProjectKey,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ProjectKey returns the project issues are filed into.
func (c *Client) ProjectKey() string {
	return c.projectKey
}

// CreateIssue files one Task issue via POST /rest/api/3/issue.
// Each call creates a new issue; there is no deduplication or retry.
func (c *Client) CreateIssue(ctx context.Context, req CreateIssueRequest) (*Issue, error) {
	if strings.TrimSpace(req.Summary) == "" {
		return nil, ErrEmptySummary
	}

	payload := createIssuePayload{
		Fields: issueFields{
			Project:     projectRef{Key: c.projectKey},
			Summary:     req.Summary,
			Description: req.Description,
			IssueType:   issueTypeRef{Name: IssueTypeTask},
			DueDate:     req.DueDate,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal create issue request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+createIssuePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build create issue request: %w", err)
	}
	httpReq.SetBasicAuth(c.email, c.apiToken)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call jira create issue API: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read jira create issue response: %w", err)
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var issue Issue
	if err := json.Unmarshal(raw, &issue); err != nil {
		return nil, fmt.Errorf("failed to decode jira create issue response: %w", err)
	}
	issue.Raw = json.RawMessage(raw)
	return &issue, nil
}
