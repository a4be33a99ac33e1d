package handler

import (
	"net/http"
	"strconv"

	"github.com/Soriano-1807/ayudantech-backend/internal/dto"
	"github.com/Soriano-1807/ayudantech-backend/internal/service"
	"github.com/Soriano-1807/ayudantech-backend/pkg/response"
	"github.com/Soriano-1807/ayudantech-backend/pkg/validator"
	"github.com/gin-gonic/gin"
)

type AssistantshipHandler struct {
	service service.AssistantshipService
}

func NewAssistantshipHandler(service service.AssistantshipService) *AssistantshipHandler {
	return &AssistantshipHandler{service: service}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id format"})
		return 0, false
	}
	return uint(id), true
}

func (h *AssistantshipHandler) Create(c *gin.Context) {
	var input dto.CreateAssistantshipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.service.Create(c.Request.Context(), input); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "assistantship created successfully"})
}

func (h *AssistantshipHandler) GetAll(c *gin.Context) {
	assistantships, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, assistantships)
}

func (h *AssistantshipHandler) GetByAssistant(c *gin.Context) {
	assistantship, err := h.service.GetByAssistant(c.Request.Context(), c.Param("cedula"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, assistantship)
}

func (h *AssistantshipHandler) GetBySupervisor(c *gin.Context) {
	assistantships, err := h.service.GetBySupervisor(c.Request.Context(), c.Param("cedula"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, assistantships)
}

func (h *AssistantshipHandler) SetObjective(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input dto.SetObjectiveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.service.SetObjective(c.Request.Context(), id, input); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "objective updated successfully"})
}

func (h *AssistantshipHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "assistantship deleted successfully"})
}
