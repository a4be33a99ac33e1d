package handler

import (
	"net/http"

	"github.com/Soriano-1807/ayudantech-backend/internal/dto"
	"github.com/Soriano-1807/ayudantech-backend/internal/service"
	"github.com/Soriano-1807/ayudantech-backend/pkg/response"
	"github.com/Soriano-1807/ayudantech-backend/pkg/validator"
	"github.com/gin-gonic/gin"
)

type PeriodHandler struct {
	service service.PeriodService
}

func NewPeriodHandler(service service.PeriodService) *PeriodHandler {
	return &PeriodHandler{service: service}
}

func (h *PeriodHandler) Create(c *gin.Context) {
	var input dto.CreatePeriodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.service.Create(c.Request.Context(), input); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "period created successfully"})
}

func (h *PeriodHandler) SetCurrent(c *gin.Context) {
	var input dto.SetPeriodCurrentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.service.SetCurrent(c.Request.Context(), c.Param("name"), input); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "period currency updated successfully"})
}

func (h *PeriodHandler) GetCurrent(c *gin.Context) {
	period, err := h.service.GetCurrent(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, period)
}

func (h *PeriodHandler) GetAll(c *gin.Context) {
	periods, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, periods)
}

func (h *PeriodHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("name")); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "period deleted successfully"})
}
