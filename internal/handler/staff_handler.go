package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"chayen/internal/service"
)

// StaffHandler handles staff roster endpoints.
type StaffHandler struct {
	staffService service.StaffService
}

// NewStaffHandler creates a new StaffHandler.
func NewStaffHandler(staffService service.StaffService) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

// Create handles POST /api/v1/staffs
func (h *StaffHandler) Create(c *gin.Context) {
	var input service.StaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	staff, err := h.staffService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, staff)
}

// List handles GET /api/v1/staffs?active=true
func (h *StaffHandler) List(c *gin.Context) {
	staffs, err := h.staffService.List(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, staffs)
}

// Update handles PUT /api/v1/staffs/:id
func (h *StaffHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid staff id")
		return
	}

	var input service.StaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	staff, err := h.staffService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, staff)
}

// Delete handles DELETE /api/v1/staffs/:id
func (h *StaffHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid staff id")
		return
	}

	if err := h.staffService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
