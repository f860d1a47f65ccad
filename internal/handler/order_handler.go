package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"chayen/internal/middleware"
	"chayen/internal/service"
)

// OrderHandler handles order capture and retrieval endpoints.
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Confirm handles POST /api/v1/orders
func (h *OrderHandler) Confirm(c *gin.Context) {
	var input service.ConfirmOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	order, err := h.orderService.Confirm(c.Request.Context(), input, middleware.GetUsername(c))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, order)
}

// List handles GET /api/v1/orders?date=YYYY-MM-DD&staff_id=&offset=&limit=
func (h *OrderHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)
	input := service.ListOrdersInput{
		Date:   c.Query("date"),
		Offset: offset,
		Limit:  limit,
	}
	if staffID := c.Query("staff_id"); staffID != "" {
		id, err := uuid.Parse(staffID)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid staff_id")
			return
		}
		input.StaffID = &id
	}

	orders, total, err := h.orderService.List(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, orders, PagMeta{Total: total, Offset: offset, Limit: limit})
}

func parsePagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}

// Get handles GET /api/v1/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid order id")
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, order)
}

// DeleteByDate handles DELETE /api/v1/admin/orders?date=YYYY-MM-DD
func (h *OrderHandler) DeleteByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "date query parameter is required")
		return
	}

	deleted, err := h.orderService.DeleteByDate(c.Request.Context(), date)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": deleted})
}
