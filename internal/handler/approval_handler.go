package handler

import (
	"net/http"

	"github.com/Soriano-1807/ayudantech-backend/internal/dto"
	"github.com/Soriano-1807/ayudantech-backend/internal/service"
	"github.com/Soriano-1807/ayudantech-backend/pkg/response"
	"github.com/Soriano-1807/ayudantech-backend/pkg/validator"
	"github.com/gin-gonic/gin"
)

type ApprovalHandler struct {
	service service.ApprovalService
}

func NewApprovalHandler(service service.ApprovalService) *ApprovalHandler {
	return &ApprovalHandler{service: service}
}

func (h *ApprovalHandler) Create(c *gin.Context) {
	var input dto.CreateApprovalInput
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

func (h *ApprovalHandler) GetByPeriod(c *gin.Context) {
	approvals, err := h.service.GetByPeriod(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, approvals)
}

func (h *ApprovalHandler) GetPeriodByAssistantship(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	period, err := h.service.GetPeriodByAssistantship(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"period": period})
}

func (h *ApprovalHandler) GetApprovedDetails(c *gin.Context) {
	details, err := h.service.GetApprovedDetails(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

func (h *ApprovalHandler) GetWindow(c *gin.Context) {
	window, err := h.service.GetWindow(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, window)
}

func (h *ApprovalHandler) SetWindow(c *gin.Context) {
	var input dto.SetApprovalWindowInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "the value of is_open must be true or false"})
		return
	}

	window, err := h.service.SetWindow(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, window)
}
