package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/forumhub/forum-hub-backend/internal/services/report"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReportHandler struct {
	reportService *report.Service
}

func NewReportHandler(db *gorm.DB) *ReportHandler {
	return &ReportHandler{
		reportService: report.NewReportService(db),
	}
}

// ExportTopics godoc
// @Summary Export topics to Excel
// @Description Download an .xlsx listing of all topics
// @Tags topics
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file "xlsx workbook"
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /topics/export [get]
func (h *ReportHandler) ExportTopics(c *gin.Context) {
	filename := fmt.Sprintf("topics_%d.xlsx", time.Now().Unix())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := h.reportService.WriteTopicsReport(c.Writer); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
