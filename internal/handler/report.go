package handler

import (
	"math"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AbdelrahmanAmrSobh/HotelSystem/internal/hotel"
)

// ReportHandler serves the occupancy and revenue report.
type ReportHandler struct {
	Desk *hotel.Desk
}

// NewReportHandler constructs a ReportHandler bound to the given desk.
func NewReportHandler(desk *hotel.Desk) *ReportHandler {
	if desk == nil {
		panic("nil desk passed to NewReportHandler")
	}
	return &ReportHandler{Desk: desk}
}

// GetReport handles GET /v1/report.  Revenue is rounded to two
// decimal places here, at the display boundary; the core keeps the
// exact value.
func (h *ReportHandler) GetReport(c echo.Context) error {
	report := h.Desk.Report()
	report.TotalRevenue = math.Round(report.TotalRevenue*100) / 100
	return c.JSON(http.StatusOK, report)
}
