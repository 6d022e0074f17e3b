package http

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"transcript-tasks/internal/pipeline"
	pkgErrors "transcript-tasks/pkg/errors"
	"transcript-tasks/pkg/media"
)

// processExtractReq binds the extract request body.
func (h *handler) processExtractReq(c *gin.Context) (extractReq, error) {
	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processFileIssuesReq binds and validates the file-issues request body.
func (h *handler) processFileIssuesReq(c *gin.Context) (fileIssuesReq, error) {
	var req fileIssuesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processRecordingReq validates the multipart upload and stores it in a temp
// file. The caller must invoke cleanup.
func (h *handler) processRecordingReq(c *gin.Context) (processReq, string, func(), error) {
	noop := func() {}
	var req processReq

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	fh, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return req, "", noop, errTooLarge
		}
		return req, "", noop, errMissingFile
	}
	if fh.Size > h.maxUploadBytes {
		return req, "", noop, errTooLarge
	}
	if !media.IsSupported(fh.Filename) {
		return req, "", noop, h.mapError(pipeline.ErrUnsupportedMedia)
	}
	if err := c.ShouldBind(&req); err != nil {
		return req, "", noop, err
	}

	dir, err := os.MkdirTemp(h.uploadDir, "upload-*")
	if err != nil {
		h.l.Errorf(c.Request.Context(), "processRecordingReq: failed to create upload dir: %v", err)
		return req, "", noop, pkgErrors.ErrInternalServerError
	}
	cleanup := func() { os.RemoveAll(dir) }

	path := filepath.Join(dir, "recording."+media.SniffType(fh.Filename))
	if err := c.SaveUploadedFile(fh, path); err != nil {
		cleanup()
		h.l.Errorf(c.Request.Context(), "processRecordingReq: failed to store upload: %v", err)
		return req, "", noop, pkgErrors.ErrInternalServerError
	}
	return req, path, cleanup, nil
}
