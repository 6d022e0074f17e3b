package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	pkgErrors "transcript-tasks/pkg/errors"
)

func TestHTTPError(t *testing.T) {
	err := pkgErrors.NewHTTPErrorf(http.StatusConflict, "issue %s exists", "OPS-1")
	if err.Error() != "issue OPS-1 exists" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.StatusCode != http.StatusConflict || err.Code != http.StatusConflict {
		t.Errorf("unexpected status/code: %d/%d", err.StatusCode, err.Code)
	}
}

func TestAsHTTPError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", pkgErrors.ErrTooManyRequests)

	he, ok := pkgErrors.AsHTTPError(wrapped)
	if !ok {
		t.Fatalf("expected wrapped HTTPError to be found")
	}
	if he.StatusCode != http.StatusTooManyRequests {
		t.Errorf("StatusCode = %d, want 429", he.StatusCode)
	}

	if _, ok := pkgErrors.AsHTTPError(fmt.Errorf("plain")); ok {
		t.Errorf("plain error must not convert")
	}
}
