package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rental-hub/internal/domain"
	"rental-hub/internal/service"
)

// PropertyHandler mantiene dependencias para endpoints del feed y likes.
type PropertyHandler struct {
	logger      *zap.Logger
	listingServ *service.ListingService
}

func NewPropertyHandler(logger *zap.Logger, listingServ *service.ListingService) *PropertyHandler {
	return &PropertyHandler{
		logger:      logger,
		listingServ: listingServ,
	}
}

// ListProperties maneja GET /properties. Una lista vacía responde 200 con
// un arreglo vacío, nunca null: el cliente distingue vacío de no-cargado.
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	props, err := h.listingServ.ListAvailable(c.Request.Context())
	if err != nil {
		h.logger.Error("list properties failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while fetching properties"})
		return
	}
	if props == nil {
		props = []domain.Property{}
	}
	c.JSON(http.StatusOK, props)
}

// AddProperty maneja POST /add_property.
func (h *PropertyHandler) AddProperty(c *gin.Context) {
	var req struct {
		Title        string `json:"title" binding:"required"`
		Address      string `json:"address" binding:"required"`
		City         string `json:"city" binding:"required"`
		Price        int64  `json:"price" binding:"required"`
		Status       string `json:"status" binding:"required"`
		Bedrooms     int    `json:"bedrooms"`
		Bathrooms    int    `json:"bathrooms"`
		AreaSqft     int    `json:"area_sqft"`
		PropertyType string `json:"property_type" binding:"required"`
		ListedDate   string `json:"listed_date" binding:"required"`
		OwnerUserID  int64  `json:"owner_user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid add property request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing one or more required fields"})
		return
	}

	_, err := h.listingServ.AddProperty(c.Request.Context(), domain.Property{
		Title:        req.Title,
		Address:      req.Address,
		City:         req.City,
		Price:        req.Price,
		Status:       req.Status,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		AreaSqft:     req.AreaSqft,
		PropertyType: req.PropertyType,
		ListedDate:   req.ListedDate,
		OwnerUserID:  req.OwnerUserID,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidProperty) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing one or more required fields"})
			return
		}
		h.logger.Error("add property failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while adding the property"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Property added successfully"})
}

// LikeProperty maneja POST /like_property.
func (h *PropertyHandler) LikeProperty(c *gin.Context) {
	var req struct {
		PropertyID   int64 `json:"property_id" binding:"required"`
		TenantUserID int64 `json:"tenant_user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid like request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing property_id or tenant_user_id"})
		return
	}

	err := h.listingServ.LikeProperty(c.Request.Context(), req.PropertyID, req.TenantUserID)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyLiked) {
			c.JSON(http.StatusConflict, gin.H{"error": "You have already liked this property"})
			return
		}
		h.logger.Error("like property failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Property liked successfully"})
}

// PropertyLikes maneja GET /get_likes/:property_id.
func (h *PropertyHandler) PropertyLikes(c *gin.Context) {
	propertyID, err := strconv.ParseInt(c.Param("property_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property id"})
		return
	}

	likes, err := h.listingServ.PropertyLikes(c.Request.Context(), propertyID)
	if err != nil {
		if errors.Is(err, service.ErrNoLikes) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No one has liked this property yet."})
			return
		}
		h.logger.Error("property likes failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while fetching likes"})
		return
	}

	c.JSON(http.StatusOK, likes)
}
