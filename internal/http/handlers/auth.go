package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace/internal/http/middleware"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	auth := h.Auth
	auth.RequestID = middleware.GetRequestID(c)
	token, acc, err := auth.Login(c.Request.Context(), req.Role, req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": acc})
}
