package http

import (
	"errors"
	"net/http"
	"strings"

	"transcript-tasks/internal/pipeline"
	pkgErrors "transcript-tasks/pkg/errors"
	"transcript-tasks/pkg/media"
)

var (
	errMissingFile = pkgErrors.NewHTTPError(http.StatusBadRequest, "file is required")
	errTooLarge    = pkgErrors.NewHTTPError(http.StatusBadRequest, "file is too large")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, pipeline.ErrNoTasks):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "tasks must not be empty")
	case errors.Is(err, pipeline.ErrMediaRequired):
		return errMissingFile
	case errors.Is(err, pipeline.ErrUnsupportedMedia):
		return pkgErrors.NewHTTPErrorf(http.StatusBadRequest, "unsupported media type, accepted: %s", strings.Join(media.SupportedTypes(), ", "))
	case errors.Is(err, pipeline.ErrTrackerNotConfigured),
		errors.Is(err, pipeline.ErrTranscoderNotConfigured),
		errors.Is(err, pipeline.ErrTranscriberNotConfigured):
		return pkgErrors.ErrServiceUnavailable
	case errors.Is(err, pipeline.ErrTranscode):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "could not decode media file")
	case errors.Is(err, pipeline.ErrTranscribe):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "speech recognition failed")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
