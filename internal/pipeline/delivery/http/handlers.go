package http

import (
	"github.com/gin-gonic/gin"

	"transcript-tasks/pkg/response"
)

// Extract godoc
// @Summary     Extract tasks from text
// @Description Splits a transcript into lines and returns the action items found, plus a guessed assignee.
// @Tags        Pipeline
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Transcript text"
// @Success     200  {object} extractResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		h.l.Warnf(ctx, "pipeline.http.Extract: invalid request: %v", err)
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Extract(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newExtractResp(output))
}

// FileIssues godoc
// @Summary     File tasks as issues
// @Description Creates one Task issue per item, sequentially. A failed item is reported and the rest continue.
// @Tags        Pipeline
// @Accept      json
// @Produce     json
// @Param       body body fileIssuesReq true "Tasks to file"
// @Success     200  {object} fileIssuesResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     503  {object} response.Resp "Issue tracker not configured"
// @Router      /api/v1/issues [POST]
func (h *handler) FileIssues(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFileIssuesReq(c)
	if err != nil {
		h.l.Warnf(ctx, "pipeline.http.FileIssues: invalid request: %v", err)
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.FileIssues(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.FileIssues: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newFileIssuesResp(output))
}

// ProcessRecording godoc
// @Summary     Process a recording
// @Description Transcodes an audio/video upload to mono 16 kHz WAV, transcribes it, extracts tasks and optionally files them.
// @Tags        Pipeline
// @Accept      multipart/form-data
// @Produce     json
// @Param       file          formData file   true  "Audio or video file"
// @Param       language      formData string false "Language hint (auto, en, ru, ...)"
// @Param       extract_tasks formData bool   false "Extract tasks (default true)"
// @Param       file_issues   formData bool   false "File extracted tasks in the issue tracker"
// @Success     200 {object} processResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Undecodable media"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Speech recognition failed"
// @Router      /api/v1/recordings [POST]
func (h *handler) ProcessRecording(c *gin.Context) {
	ctx := c.Request.Context()

	req, path, cleanup, err := h.processRecordingReq(c)
	if err != nil {
		h.l.Warnf(ctx, "pipeline.http.ProcessRecording: invalid request: %v", err)
		response.Error(c, err, nil)
		return
	}
	defer cleanup()

	output, err := h.uc.Process(ctx, req.toInput(path))
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newProcessResp(output))
}
