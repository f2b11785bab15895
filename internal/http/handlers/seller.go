package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"marketplace/internal/domain/models"
	"marketplace/internal/http/middleware"
	"marketplace/internal/services"
)

// GET /api/seller/products/deleted
func (h *Handler) ListDeletedProducts(c *gin.Context) {
	sid, ok := sellerID(c)
	if !ok {
		return
	}
	st := listQuery(c, services.DeletedProductsScreen, "category")
	res, err := h.listing(c).DeletedProducts(c.Request.Context(), sid, st)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, newListResponse(res))
}

// POST /api/seller/products/:id/restore
func (h *Handler) RestoreProduct(c *gin.Context) {
	sid, ok := sellerID(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.listing(c).RestoreProduct(c.Request.Context(), sid, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product restored", "id": id})
}

// POST /api/seller/products/restore
func (h *Handler) RestoreProducts(c *gin.Context) {
	sid, ok := sellerID(c)
	if !ok {
		return
	}
	var req models.RestoreRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	n, err := h.listing(c).RestoreProducts(c.Request.Context(), sid, req.IDs)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "products restored", "restored": n})
}

// GET /api/seller/orders
func (h *Handler) ListSellerOrders(c *gin.Context) {
	sid, ok := sellerID(c)
	if !ok {
		return
	}
	res, err := h.listing(c).SellerOrders(c.Request.Context(), sid, listQuery(c, services.SellerOrdersScreen, "status", "category"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, newListResponse(res))
}

// GET /api/seller/orders/export renders the page the dashboard shows as PDF.
func (h *Handler) ExportSellerOrders(c *gin.Context) {
	sid, ok := sellerID(c)
	if !ok {
		return
	}
	res, err := h.listing(c).SellerOrders(c.Request.Context(), sid, listQuery(c, services.SellerOrdersScreen, "status", "category"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	exp := h.Export
	exp.RequestID = middleware.GetRequestID(c)
	pdf, filename, err := exp.SellerOrdersPDF(sid, res)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Length", strconv.Itoa(len(pdf)))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
