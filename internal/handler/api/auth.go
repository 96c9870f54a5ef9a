package api

import (
	"errors"
	"net/http"

	reqdto "emy-orders/internal/handler/dto/request"
	resdto "emy-orders/internal/handler/dto/response"
	"emy-orders/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
}

func NewAuthHandler(authCommands commands.AuthCommands) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
	}
}

// @Summary Login
// @Description Authenticate against the customer or staff directory and issue a token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	role, err := req.GetRole()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid role",
		})
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req.Username, req.Password, role)
	if err != nil {
		if errors.Is(err, commands.ErrAuthenticationFailed) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid username or password",
			})
			return
		}
		respondGatewayError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}
