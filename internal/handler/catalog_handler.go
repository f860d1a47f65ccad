package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"chayen/internal/service"
)

// CatalogHandler handles product and topping management endpoints.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// CreateProduct handles POST /api/v1/products
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var input service.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, product)
}

// ListProducts handles GET /api/v1/products?active=true
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.catalogService.ListProducts(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, products)
}

// UpdateProduct handles PUT /api/v1/products/:id
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid product id")
		return
	}

	var input service.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	product, err := h.catalogService.UpdateProduct(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, product)
}

// DeleteProduct handles DELETE /api/v1/products/:id
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid product id")
		return
	}

	if err := h.catalogService.DeleteProduct(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}

// CreateTopping handles POST /api/v1/toppings
func (h *CatalogHandler) CreateTopping(c *gin.Context) {
	var input service.ToppingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	topping, err := h.catalogService.CreateTopping(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, topping)
}

// ListToppings handles GET /api/v1/toppings?active=true
func (h *CatalogHandler) ListToppings(c *gin.Context) {
	toppings, err := h.catalogService.ListToppings(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, toppings)
}

// UpdateTopping handles PUT /api/v1/toppings/:id
func (h *CatalogHandler) UpdateTopping(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid topping id")
		return
	}

	var input service.ToppingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	topping, err := h.catalogService.UpdateTopping(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, topping)
}

// DeleteTopping handles DELETE /api/v1/toppings/:id
func (h *CatalogHandler) DeleteTopping(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid topping id")
		return
	}

	if err := h.catalogService.DeleteTopping(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
