package handler

import (
	"net/http"

	"github.com/Soriano-1807/ayudantech-backend/internal/dto"
	"github.com/Soriano-1807/ayudantech-backend/internal/service"
	"github.com/Soriano-1807/ayudantech-backend/pkg/response"
	"github.com/Soriano-1807/ayudantech-backend/pkg/validator"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) LoginAdministrator(c *gin.Context) {
	h.login(c, service.RoleAdministrator)
}

func (h *AuthHandler) LoginAssistant(c *gin.Context) {
	h.login(c, service.RoleAssistant)
}

func (h *AuthHandler) LoginSupervisor(c *gin.Context) {
	h.login(c, service.RoleSupervisor)
}

func (h *AuthHandler) login(c *gin.Context, role string) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	res, err := h.service.Login(c.Request.Context(), role, input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
