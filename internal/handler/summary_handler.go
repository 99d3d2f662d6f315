package handler

import (
	"net/http"
	"time"

	"pharmatrade/internal/logger"
	"pharmatrade/internal/middleware"
	"pharmatrade/internal/service"
	"pharmatrade/pkg/pagination"
	"pharmatrade/pkg/response"

	"github.com/gin-gonic/gin"
)

type SummaryHandler struct {
	summaryService service.SummaryService
}

func NewSummaryHandler(summaryService service.SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

func (h *SummaryHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api")
	{
		api.GET("/supplier-customer-summary", h.GetSummary)
		api.GET("/trade-overview", h.GetOverview)
	}
}

// GetSummary ranks suppliers (or destination countries) with their top counterparties
// @Summary      Supplier-customer or geographic summary
// @Description  Normalizes names, aggregates declared values and returns the top-N parents with their top 5 children and an Others row
// @Tags         Summary
// @Produce      json
// @Param        search      query  string  false  "Matches product description, supplier or buyer"
// @Param        limit       query  int     false  "Number of ranked parents (default 5, max 100)"
// @Param        type        query  string  false  "supplier-customer (default) or geographic"
// @Param        start_date  query  string  false  "Start Date (RFC3339)"
// @Param        end_date    query  string  false  "End Date (RFC3339)"
// @Success      200  {object}  response.Response{data=model.SummaryResult}
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/supplier-customer-summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	q, ok := bindSummaryQuery(c)
	if !ok {
		return
	}
	q.Type = c.DefaultQuery("type", "supplier-customer")

	result, err := h.summaryService.GetSummary(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// GetOverview returns both analyses for the same filter
// @Summary      Trade overview
// @Description  Supplier-customer and geographic summaries computed over one record set
// @Tags         Summary
// @Produce      json
// @Param        search      query  string  false  "Matches product description, supplier or buyer"
// @Param        limit       query  int     false  "Number of ranked parents (default 5, max 100)"
// @Param        start_date  query  string  false  "Start Date (RFC3339)"
// @Param        end_date    query  string  false  "End Date (RFC3339)"
// @Success      200  {object}  response.Response{data=model.TradeOverview}
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/trade-overview [get]
func (h *SummaryHandler) GetOverview(c *gin.Context) {
	q, ok := bindSummaryQuery(c)
	if !ok {
		return
	}

	overview, err := h.summaryService.GetOverview(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, overview))
}

// bindSummaryQuery reads the shared filter parameters. It writes the 400 response itself
// and reports false when a date is malformed.
func bindSummaryQuery(c *gin.Context) (service.SummaryQuery, bool) {
	q := service.SummaryQuery{
		Search: c.Query("search"),
		Limit:  pagination.ParseTopN(c),
	}

	var err error
	if q.StartDate, err = parseDate(c.Query("start_date")); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "invalid start_date format, expected RFC3339"))
		return q, false
	}
	if q.EndDate, err = parseDate(c.Query("end_date")); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "invalid end_date format, expected RFC3339"))
		return q, false
	}
	return q, true
}

func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// respondError maps service errors to the response envelope. Internal failures are
// logged with the request id and reported without detail.
func respondError(c *gin.Context, err error) {
	if service.IsBadRequest(err) {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	_ = c.Error(err)
	logger.Log.WithError(err).WithField("request_id", middleware.GetRequestID(c)).Error("request failed")
	c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "internal server error"))
}
