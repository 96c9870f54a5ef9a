package api

import (
	"net/http"
	"strconv"

	resdto "emy-orders/internal/handler/dto/response"
	"emy-orders/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct {
	reportQueries queries.ReportQueries
}

func NewReportsHandler(reportQueries queries.ReportQueries) *ReportsHandler {
	return &ReportsHandler{
		reportQueries: reportQueries,
	}
}

// @Summary Sales report
// @Description Aggregate confirmed sales over a window. filter=all|day|month|range; day takes date=YYYY-MM-DD, month takes year= and month=, range takes start= and end= (inclusive days).
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param filter query string false "Filter mode" default(all)
// @Param date query string false "Day (YYYY-MM-DD)"
// @Param year query int false "Year"
// @Param month query int false "Month (1-12)"
// @Param start query string false "Range start day (YYYY-MM-DD)"
// @Param end query string false "Range end day (YYYY-MM-DD)"
// @Success 200 {object} resdto.ReportResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /reports/sales [get]
func (h *ReportsHandler) SalesReport(c *gin.Context) {
	filter, err := filterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter parameters"})
		return
	}

	report, err := h.reportQueries.SalesReport(c.Request.Context(), filter)
	if err != nil {
		respondGatewayError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReportView(report))
}

func filterFromQuery(c *gin.Context) (queries.FilterSpec, error) {
	switch c.DefaultQuery("filter", "all") {
	case "day":
		return queries.NewDayFilter(c.Query("date"))
	case "month":
		year, err := strconv.Atoi(c.Query("year"))
		if err != nil {
			return queries.FilterSpec{}, err
		}
		month, err := strconv.Atoi(c.Query("month"))
		if err != nil {
			return queries.FilterSpec{}, err
		}
		return queries.NewMonthFilter(year, month)
	case "range":
		return queries.NewRangeFilter(c.Query("start"), c.Query("end"))
	default:
		return queries.NewAllFilter(), nil
	}
}
