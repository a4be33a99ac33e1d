package handler

import (
	"net/http"

	"github.com/Soriano-1807/ayudantech-backend/internal/dto"
	"github.com/Soriano-1807/ayudantech-backend/internal/service"
	"github.com/Soriano-1807/ayudantech-backend/pkg/response"
	"github.com/Soriano-1807/ayudantech-backend/pkg/validator"
	"github.com/gin-gonic/gin"
)

type SupervisorHandler struct {
	service service.SupervisorService
}

func NewSupervisorHandler(service service.SupervisorService) *SupervisorHandler {
	return &SupervisorHandler{service: service}
}

func (h *SupervisorHandler) Create(c *gin.Context) {
	var input dto.CreateSupervisorInput
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

func (h *SupervisorHandler) GetAll(c *gin.Context) {
	supervisors, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, supervisors)
}

func (h *SupervisorHandler) GetByID(c *gin.Context) {
	supervisor, err := h.service.GetByID(c.Request.Context(), c.Param("cedula"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, supervisor)
}

func (h *SupervisorHandler) GetByEmail(c *gin.Context) {
	supervisor, err := h.service.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, supervisor)
}

func (h *SupervisorHandler) Update(c *gin.Context) {
	var input dto.UpdateSupervisorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.service.Update(c.Request.Context(), c.Param("cedula"), input); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "supervisor updated successfully"})
}

func (h *SupervisorHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("cedula")); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "supervisor deleted successfully"})
}
