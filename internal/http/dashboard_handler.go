package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rental-hub/internal/service"
)

// DashboardHandler mantiene dependencias para los dashboards por rol.
//
// Ojo con las formas de error: a diferencia del resto de la API, los
// dashboards responden {message} en sus 404, no {error}. El cliente
// depende de eso.
type DashboardHandler struct {
	logger      *zap.Logger
	listingServ *service.ListingService
}

func NewDashboardHandler(logger *zap.Logger, listingServ *service.ListingService) *DashboardHandler {
	return &DashboardHandler{
		logger:      logger,
		listingServ: listingServ,
	}
}

// OwnerDashboard maneja GET /owner_dashboard/:user_id.
func (h *DashboardHandler) OwnerDashboard(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}

	entries, err := h.listingServ.OwnerDashboard(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoOwnerProperties) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No properties found for this owner."})
			return
		}
		h.logger.Error("owner dashboard failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while fetching properties"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// TenantDashboard maneja GET /tenant_dashboard/:user_id.
func (h *DashboardHandler) TenantDashboard(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}

	entries, err := h.listingServ.TenantDashboard(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoLikedProperties) {
			c.JSON(http.StatusNotFound, gin.H{"message": "You haven't liked any properties yet."})
			return
		}
		h.logger.Error("tenant dashboard failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while fetching dashboard data"})
		return
	}

	c.JSON(http.StatusOK, entries)
}
