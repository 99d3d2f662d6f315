package handler

import (
	"net/http"

	"pharmatrade/internal/service"
	"pharmatrade/pkg/pagination"
	"pharmatrade/pkg/response"

	"github.com/gin-gonic/gin"
)

type ShipmentHandler struct {
	shipmentService service.ShipmentService
}

func NewShipmentHandler(shipmentService service.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{shipmentService: shipmentService}
}

func (h *ShipmentHandler) RegisterRoutes(router *gin.RouterGroup) {
	shipments := router.Group("/api/shipments")
	{
		shipments.GET("", h.ListShipments)
		shipments.POST("", h.ImportShipments)
	}
}

// ListShipments returns stored shipments, newest first
// @Summary      List shipments
// @Tags         Shipments
// @Produce      json
// @Param        page   query  int  false  "Page number (default: 1)"
// @Param        limit  query  int  false  "Items per page (default: 20)"
// @Success      200  {object}  response.Response{data=[]model.Shipment}
// @Failure      500  {object}  response.Response
// @Router       /api/shipments [get]
func (h *ShipmentHandler) ListShipments(c *gin.Context) {
	params := pagination.Parse(c)

	shipments, total, err := h.shipmentService.ListShipments(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, shipments, params.Page, params.Limit, total))
}

// ImportShipments stores a batch of declared shipments
// @Summary      Import shipments
// @Description  Stores up to 5000 shipments as declared. Summaries are recomputed on the next request and dashboards are notified over /ws.
// @Tags         Shipments
// @Accept       json
// @Produce      json
// @Param        payload  body  service.ImportShipmentsRequest  true  "Shipments to import"
// @Success      201  {object}  response.Response{data=service.ImportShipmentsResponse}
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/shipments [post]
func (h *ShipmentHandler) ImportShipments(c *gin.Context) {
	var req service.ImportShipmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	res, err := h.shipmentService.ImportShipments(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, res))
}
