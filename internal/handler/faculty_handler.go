package handler

import (
	"net/http"

	"github.com/Soriano-1807/ayudantech-backend/internal/service"
	"github.com/Soriano-1807/ayudantech-backend/pkg/response"
	"github.com/gin-gonic/gin"
)

type FacultyHandler struct {
	service service.FacultyService
}

func NewFacultyHandler(service service.FacultyService) *FacultyHandler {
	return &FacultyHandler{service: service}
}

func (h *FacultyHandler) GetAll(c *gin.Context) {
	faculties, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, faculties)
}

func (h *FacultyHandler) GetCareers(c *gin.Context) {
	careers, err := h.service.GetCareers(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, careers)
}
