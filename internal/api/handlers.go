package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/Innocent9712/much-to-do/calendar/internal/calendar"
)

// Plain-text bodies for update and delete. Update answers 200 with either one.
const (
	bodyOK     = "OK"
	bodyFailed = "Failed"
)

type taskRequest struct {
	Date string `json:"date" binding:"required"`
	Text string `json:"text" binding:"required"`
}

// taskPathPrefix is the path every PUT/DELETE task request is addressed under.
const taskPathPrefix = "/api/calendar/task/"

type taskURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// getMonth godoc
//
//	@Summary	List every date with its tasks
//	@Tags		calendar
//	@Produce	json
//	@Success	200	{object}	calendar.Month
//	@Router		/api/calendar/month [get]
func (h *Handler) getMonth(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListAll())
}

// createTask godoc
//
//	@Summary	Create a task under a date
//	@Tags		calendar
//	@Accept		json
//	@Produce	json
//	@Param		task	body		taskRequest	true	"date and text"
//	@Success	200		{object}	calendar.Task
//	@Failure	400		{string}	string
//	@Router		/api/calendar/task [post]
func (h *Handler) createTask(c *gin.Context) {
	var req taskRequest
	if err := bindTaskRequest(c, &req); err != nil {
		h.fail(c, err)
		return
	}

	task, err := h.store.CreateTask(req.Date, req.Text)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// updateTask godoc
//
//	@Summary	Rename a task
//	@Tags		calendar
//	@Accept		json
//	@Produce	plain
//	@Param		id		path		int			true	"task id"
//	@Param		task	body		taskRequest	true	"date the task lives under and its new text"
//	@Success	200		{string}	string		"OK or Failed"
//	@Failure	400		{string}	string
//	@Router		/api/calendar/task/{id} [put]
func (h *Handler) updateTask(c *gin.Context) {
	id, ok := h.taskID(c)
	if !ok {
		return
	}
	var req taskRequest
	if err := bindTaskRequest(c, &req); err != nil {
		h.fail(c, err)
		return
	}

	if !h.store.UpdateTask(id, req.Date, req.Text) {
		_ = c.Error(fmt.Errorf("%w: no task %d under %q", calendar.ErrOperationFailed, id, req.Date))
		c.String(http.StatusOK, bodyFailed)
		return
	}
	c.String(http.StatusOK, bodyOK)
}

// deleteTask godoc
//
//	@Summary	Delete a task from whichever date holds it
//	@Tags		calendar
//	@Produce	plain
//	@Param		id	path		int		true	"task id"
//	@Success	200	{string}	string	"OK"
//	@Failure	400	{string}	string
//	@Router		/api/calendar/task/{id} [delete]
func (h *Handler) deleteTask(c *gin.Context) {
	id, ok := h.taskID(c)
	if !ok {
		return
	}
	if !h.store.DeleteTask(id) {
		h.log.WithField("id", id).Debug("delete of unknown task")
	}
	c.String(http.StatusOK, bodyOK)
}

// health godoc
//
//	@Summary	Liveness probe
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// notFound answers unmatched routes. PUT and DELETE under the task prefix
// with an empty or multi-segment id are bad ids, not unknown endpoints.
func (h *Handler) notFound(c *gin.Context) {
	path := c.Request.URL.Path
	switch c.Request.Method {
	case http.MethodPut, http.MethodDelete:
		if rest, ok := strings.CutPrefix(path, taskPathPrefix); ok {
			h.fail(c, fmt.Errorf("%w: id must be a positive integer, got %q", calendar.ErrInvalidInput, rest))
			return
		}
	}
	h.fail(c, fmt.Errorf("%w: %s %s", ErrNotFound, c.Request.Method, path))
}

// bindTaskRequest decodes the whole body as exactly one JSON object and
// validates it. Trailing data after the object is rejected.
func bindTaskRequest(c *gin.Context, req *taskRequest) error {
	data, err := c.GetRawData()
	if err != nil {
		return bindError(err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return bindError(io.EOF)
	}
	if err := json.Unmarshal(data, req); err != nil {
		return bindError(err)
	}
	if err := binding.Validator.ValidateStruct(req); err != nil {
		return bindError(err)
	}
	return nil
}

// taskID parses the :id path segment, writing a 400 when it is not a positive integer.
func (h *Handler) taskID(c *gin.Context) (int64, bool) {
	var uri taskURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.fail(c, fmt.Errorf("%w: id must be a positive integer, got %q", calendar.ErrInvalidInput, c.Param("id")))
		return 0, false
	}
	return uri.ID, true
}
