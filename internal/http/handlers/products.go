package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace/internal/domain/models"
	"marketplace/internal/services"
)

// GET /api/products
func (h *Handler) ListProducts(c *gin.Context) {
	st := listQuery(c, services.StorefrontScreen, "category")
	res, err := h.listing(c).Storefront(c.Request.Context(), st)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, newListResponse(res))
}

// GET /api/products/category/:link
func (h *Handler) ListCategoryProducts(c *gin.Context) {
	st := parseListQuery(c, services.CategoryScreen)
	if h.Catalog != nil {
		if cat, ok := h.Catalog.ByLink(c.Param("link")); ok {
			st = st.WithCategories(cat.Name).WithPage(st.Page.Index)
		}
	}
	st = st.Reconcile(c.Query("view"))

	res, cat, err := h.listing(c).Category(c.Request.Context(), c.Param("link"), st)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, struct {
		listResponse[models.Product]
		Category string `json:"category"`
	}{newListResponse(res), cat.Name})
}

// GET /api/categories
func (h *Handler) ListCategories(c *gin.Context) {
	if h.Catalog == nil {
		c.JSON(http.StatusOK, gin.H{"items": []any{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": h.Catalog.All()})
}
