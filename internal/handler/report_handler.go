package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sedbms/internal/service"
)

// ReportHandler serves the dashboard and per-student reports.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// StudentReport godoc
// @Summary Student report
// @Description Marks grouped by semester with SGPA per semester and CGPA.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param usn path string true "USN"
// @Success 200 {object} service.StudentReport
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /reports/{usn} [get]
func (h *ReportHandler) StudentReport(c echo.Context) error {
	report, err := h.reportService.StudentReport(c.Request().Context(), c.Param("usn"))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, report)
}

// Dashboard godoc
// @Summary Dashboard totals
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Dashboard
// @Failure 401 {object} errors.ErrorResponse
// @Router /dashboard [get]
func (h *ReportHandler) Dashboard(c echo.Context) error {
	dash, err := h.reportService.Dashboard(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, dash)
}
