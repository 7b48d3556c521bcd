package handlers

import (
	"fmt"
	"net/http"
	"time"

	portssvc "github.com/Grupo02-6P/grupo02-sub001/internal/core/ports/services"
	"github.com/Grupo02-6P/grupo02-sub001/internal/dto"
	"github.com/Grupo02-6P/grupo02-sub001/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportHandler handles report generation and download requests.
type reportHandler struct {
	reportService portssvc.ReportSvcFacade
}

func newReportHandler(rs portssvc.ReportSvcFacade) *reportHandler {
	return &reportHandler{reportService: rs}
}

// registerReportRoutes registers the report generation routes.
func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvcFacade) {
	h := newReportHandler(reportService)

	reports := rg.Group("/reports")
	{
		reports.GET("/:type", h.getReport)
	}
}

// getReport calculates the report named in the path. Without a format (or
// with format=json) the payload is returned as JSON; format=pdf or
// format=csv answers with the rendered document as an attachment.
func (h *reportHandler) getReport(c *gin.Context) {
	var params dto.ReportQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	reportType, err := dto.ParseReportType(c.Param("type"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	format, download, err := dto.ParseReportFormat(params.Format)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	period, err := dto.ParsePeriod(params.StartDate, params.EndDate, time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	req := dto.ReportRequest{
		Type:      reportType,
		Period:    period,
		AccountID: params.AccountID,
	}

	if !download {
		report, err := h.reportService.Calculate(c.Request.Context(), req, userID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, report)
		return
	}

	rendered, err := h.reportService.Render(c.Request.Context(), req, format, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", rendered.Filename))
	c.Data(http.StatusOK, rendered.ContentType, rendered.Content)
}
