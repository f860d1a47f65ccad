package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chayen/internal/service"
)

// ParseHandler handles the order-text parse preview endpoint.
type ParseHandler struct {
	parseService service.ParseService
}

// NewParseHandler creates a new ParseHandler.
func NewParseHandler(parseService service.ParseService) *ParseHandler {
	return &ParseHandler{parseService: parseService}
}

// Parse handles POST /api/v1/parse
func (h *ParseHandler) Parse(c *gin.Context) {
	var input service.ParseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	preview, err := h.parseService.Preview(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, preview)
}
