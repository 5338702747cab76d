package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	applicationjournal "github.com/healthtrack/backend/internal/application/journal"
	"github.com/healthtrack/backend/internal/domain/journal"
	"github.com/healthtrack/backend/internal/interfaces/http/dto"
	"github.com/healthtrack/backend/internal/interfaces/http/middleware"
)

// LogsHandler handles daily health log HTTP requests
type LogsHandler struct {
	BaseHandler
	logService *applicationjournal.LogService
}

// NewLogsHandler creates a new logs handler
func NewLogsHandler(logService *applicationjournal.LogService) *LogsHandler {
	return &LogsHandler{
		logService: logService,
	}
}

// SubmitLogRequest represents the request body for submitting a daily log.
// Numeric fields arrive as strings and are validated server-side.
type SubmitLogRequest struct {
	Date        string `json:"date" binding:"required"`
	Symptoms    string `json:"symptoms"`
	Mood        string `json:"mood"`
	SleepHours  string `json:"sleep_hours"`
	WaterIntake string `json:"water_intake"`
	Notes       string `json:"notes"`
}

// LogResponse represents a single log entry in responses
type LogResponse struct {
	ID          uuid.UUID `json:"id"`
	Date        string    `json:"date"`
	Symptoms    string    `json:"symptoms,omitempty"`
	Mood        string    `json:"mood,omitempty"`
	SleepHours  string    `json:"sleep_hours"`
	WaterIntake string    `json:"water_intake"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// newLogResponse builds a LogResponse from application-layer log info
func newLogResponse(info applicationjournal.LogInfo) LogResponse {
	return LogResponse{
		ID:          info.ID,
		Date:        info.Date,
		Symptoms:    info.Symptoms,
		Mood:        info.Mood,
		SleepHours:  info.SleepHours.String(),
		WaterIntake: info.WaterIntake.String(),
		Notes:       info.Notes,
		CreatedAt:   info.CreatedAt,
	}
}

// SubmitLog godoc
// @Summary      Submit a daily log
// @Description  Record a daily health log entry for the authenticated user
// @Tags         logs
// @Accept       json
// @Produce      json
// @Param        request body SubmitLogRequest true "Log entry"
// @Success      201 {object} dto.Response{data=LogResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /logs [post]
func (h *LogsHandler) SubmitLog(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req SubmitLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.logService.SubmitLog(c.Request.Context(), applicationjournal.SubmitLogInput{
		UserID: userID,
		Draft: journal.LogEntryDraft{
			Date:        req.Date,
			Symptoms:    req.Symptoms,
			Mood:        req.Mood,
			SleepHours:  req.SleepHours,
			WaterIntake: req.WaterIntake,
			Notes:       req.Notes,
		},
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, newLogResponse(result.Log))
}

// ListLogs godoc
// @Summary      List log entries
// @Description  List the authenticated user's log entries in chronological order
// @Tags         logs
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size (max 100)"
// @Success      200 {object} dto.Response{data=[]LogResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /logs [get]
func (h *LogsHandler) ListLogs(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid pagination parameters")
		return
	}

	result, err := h.logService.ListLogs(c.Request.Context(), applicationjournal.ListLogsInput{
		UserID:   userID,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	logs := make([]LogResponse, len(result.Logs))
	for i, info := range result.Logs {
		logs[i] = newLogResponse(info)
	}

	h.SuccessWithMeta(c, logs, result.Total, result.Page, result.PageSize)
}
