package handlers

import (
	"github.com/gin-gonic/gin"

	"marketplace/internal/catalog"
	"marketplace/internal/http/middleware"
	"marketplace/internal/services"
)

// Handler holds the services every endpoint needs. Services are values; each
// request gets a copy tagged with its request id.
type Handler struct {
	Listing services.ListingService
	Auth    services.AuthService
	Export  services.ExportService
	Catalog *catalog.Catalog
}

func (h *Handler) listing(c *gin.Context) services.ListingService {
	return h.Listing.WithRequestID(middleware.GetRequestID(c))
}
