package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	applicationjournal "github.com/healthtrack/backend/internal/application/journal"
	"github.com/healthtrack/backend/internal/application/report"
	"github.com/healthtrack/backend/internal/interfaces/http/dto"
)

// ReportHandler handles chart, export and import HTTP requests
type ReportHandler struct {
	BaseHandler
	chartService  *report.ChartService
	exportService *report.ExportService
	importService *applicationjournal.ImportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(
	chartService *report.ChartService,
	exportService *report.ExportService,
	importService *applicationjournal.ImportService,
) *ReportHandler {
	return &ReportHandler{
		chartService:  chartService,
		exportService: exportService,
		importService: importService,
	}
}

// GetChartSeries godoc
// @Summary      Get chart series
// @Description  Get the time series behind the sleep, water intake and mood charts
// @Tags         reports
// @Produce      json
// @Success      200 {object} dto.Response{data=report.ChartSeries}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /charts [get]
func (h *ReportHandler) GetChartSeries(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	series, err := h.chartService.BuildSeries(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, series)
}

// GetChartsHTML godoc
// @Summary      Render charts as HTML
// @Description  Render the sleep, water intake and mood charts as a standalone HTML page
// @Tags         reports
// @Produce      html
// @Success      200 {string} string "HTML page"
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /charts/html [get]
func (h *ReportHandler) GetChartsHTML(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	series, err := h.chartService.BuildSeries(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := h.chartService.RenderHTML(c.Writer, series); err != nil {
		h.InternalError(c, "failed to render charts")
		return
	}
}

// ExportCSV godoc
// @Summary      Export logs as CSV
// @Description  Download all of the authenticated user's log entries as a CSV attachment
// @Tags         reports
// @Produce      text/csv
// @Success      200 {string} string "CSV file"
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /logs/export [get]
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.exportService.ExportCSV(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", result.Content)
}

// ImportResponse represents the response body for a CSV import
type ImportResponse struct {
	TotalRows int                   `json:"total_rows"`
	Imported  int                   `json:"imported"`
	Failed    int                   `json:"failed"`
	Errors    []ImportErrorResponse `json:"errors,omitempty"`
}

// ImportErrorResponse describes one rejected row
type ImportErrorResponse struct {
	Row     int    `json:"row"`
	Column  string `json:"column,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ImportCSV godoc
// @Summary      Import logs from CSV
// @Description  Import log entries from a CSV file; invalid rows are reported without aborting the import
// @Tags         reports
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "CSV file"
// @Success      200 {object} dto.Response{data=ImportResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      413 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /logs/import [post]
func (h *ReportHandler) ImportCSV(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.BadRequest(c, "file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType != "" && contentType != "text/csv" && contentType != "application/octet-stream" &&
		contentType != "text/plain" && contentType != "application/vnd.ms-excel" {
		h.Error(c, http.StatusUnsupportedMediaType, dto.ErrCodeInvalidInput, "file must be a CSV file")
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		h.InternalError(c, "failed to read uploaded file")
		return
	}

	result, err := h.importService.ImportCSV(c.Request.Context(), applicationjournal.ImportInput{
		UserID:  userID,
		Content: content,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	response := ImportResponse{
		TotalRows: result.TotalRows,
		Imported:  result.Imported,
		Failed:    result.Failed,
	}
	for _, rowErr := range result.Errors {
		response.Errors = append(response.Errors, ImportErrorResponse{
			Row:     rowErr.Row,
			Column:  rowErr.Column,
			Code:    rowErr.Code,
			Message: rowErr.Message,
		})
	}

	h.Success(c, response)
}
