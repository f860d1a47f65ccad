package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chayen/internal/middleware"
	"chayen/internal/service"
)

// ShopHandler handles open/close session endpoints.
type ShopHandler struct {
	shopService service.ShopService
}

// NewShopHandler creates a new ShopHandler.
func NewShopHandler(shopService service.ShopService) *ShopHandler {
	return &ShopHandler{shopService: shopService}
}

// Open handles POST /api/v1/shop/open
func (h *ShopHandler) Open(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	session, err := h.shopService.Open(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, session)
}

// Close handles POST /api/v1/shop/close
func (h *ShopHandler) Close(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	session, err := h.shopService.Close(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, session)
}

// Status handles GET /api/v1/shop/status
func (h *ShopHandler) Status(c *gin.Context) {
	status, err := h.shopService.Status(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, status)
}
