package handler

import (
	"net/http"

	"github.com/Soriano-1807/ayudantech-backend/internal/dto"
	"github.com/Soriano-1807/ayudantech-backend/internal/service"
	"github.com/Soriano-1807/ayudantech-backend/pkg/response"
	"github.com/Soriano-1807/ayudantech-backend/pkg/validator"
	"github.com/gin-gonic/gin"
)

type AssistantHandler struct {
	service service.AssistantService
}

func NewAssistantHandler(service service.AssistantService) *AssistantHandler {
	return &AssistantHandler{service: service}
}

func (h *AssistantHandler) Create(c *gin.Context) {
	var input dto.CreateAssistantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	res, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

func (h *AssistantHandler) GetAll(c *gin.Context) {
	assistants, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, assistants)
}

func (h *AssistantHandler) GetByID(c *gin.Context) {
	assistant, err := h.service.GetByID(c.Request.Context(), c.Param("cedula"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, assistant)
}

func (h *AssistantHandler) GetByEmail(c *gin.Context) {
	assistant, err := h.service.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, assistant)
}

func (h *AssistantHandler) GetBySupervisor(c *gin.Context) {
	assistants, err := h.service.GetBySupervisor(c.Request.Context(), c.Param("cedula"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, assistants)
}

func (h *AssistantHandler) Update(c *gin.Context) {
	var input dto.UpdateAssistantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.service.Update(c.Request.Context(), c.Param("cedula"), input); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "assistant updated successfully"})
}

func (h *AssistantHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("cedula")); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "assistant deleted successfully"})
}
