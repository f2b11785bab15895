package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"marketplace/internal/domain"
	"marketplace/internal/http/middleware"
)

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "request body is empty", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid payload", err.Error())
		return false
	}
	return true
}

// paramID parses a positive numeric path parameter.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || id <= 0 {
		RespondDomainError(c, domain.ValidationError{Field: name, Msg: "invalid id"})
		return 0, false
	}
	return id, true
}

// sellerID is the authenticated caller's id; seller endpoints act on it.
func sellerID(c *gin.Context) (int64, bool) {
	who, ok := middleware.Caller(c)
	if !ok || who.UserID <= 0 {
		RespondDomainError(c, domain.UnauthorizedError{Msg: "login required"})
		return 0, false
	}
	return int64(who.UserID), true
}
