package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace/internal/services"
)

// GET /api/admin/sellers
func (h *Handler) ListSellers(c *gin.Context) {
	st := listQuery(c, services.SellersScreen, "category")
	res, err := h.listing(c).Sellers(c.Request.Context(), st)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, newListResponse(res))
}

// DELETE /api/admin/sellers/:id
func (h *Handler) DeleteSeller(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.listing(c).DeleteSeller(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "seller deleted", "id": id})
}
