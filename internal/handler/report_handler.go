package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"chayen/internal/service"
	"chayen/internal/xlsxexport"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler handles daily report endpoints.
type ReportHandler struct {
	reportService service.ReportService
	shopName      string
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService, shopName string) *ReportHandler {
	return &ReportHandler{reportService: reportService, shopName: shopName}
}

// Daily handles GET /api/v1/reports/daily?date=YYYY-MM-DD
func (h *ReportHandler) Daily(c *gin.Context) {
	summary, err := h.reportService.Daily(c.Request.Context(), c.Query("date"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, summary)
}

// Export handles GET /api/v1/reports/daily/export?date=YYYY-MM-DD
func (h *ReportHandler) Export(c *gin.Context) {
	summary, err := h.reportService.Daily(c.Request.Context(), c.Query("date"))
	if err != nil {
		HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := xlsxexport.Write(&buf, summary); err != nil {
		HandleError(c, err)
		return
	}

	filename := xlsxexport.BuildFilename(h.shopName, summary.Date)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
