package deals

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /vendors/:id/deals (owner only)
// --------------------------------------------------
func (h *Handler) CreateDeal() gin.HandlerFunc {
	return func(c *gin.Context) {

		vendorID := c.GetString("vendorID")
		if vendorID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		if vendorID != c.Param("id") {
			c.JSON(http.StatusForbidden, gin.H{"error": "not your vendor"})
			return
		}

		var req struct {
			ItemName      string   `json:"itemName"`
			DealPrice     float64  `json:"dealPrice"`
			OriginalPrice *float64 `json:"originalPrice"`
			ExpiresAt     string   `json:"expiresAt"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		expiresAt, err := time.Parse(time.RFC3339, req.ExpiresAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "expiresAt must be RFC3339"})
			return
		}

		deal, err := h.service.CreateDeal(
			c.Request.Context(),
			vendorID,
			req.ItemName,
			req.DealPrice,
			req.OriginalPrice,
			expiresAt,
		)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"dealId": deal.ID,
			"status": "created",
		})
	}
}

// --------------------------------------------------
// GET /deals/nearby?lat=&lng=&limit=
// --------------------------------------------------
func (h *Handler) Nearby() gin.HandlerFunc {
	return func(c *gin.Context) {

		lat, err := strconv.ParseFloat(c.Query("lat"), 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "lat is required"})
			return
		}
		lng, err := strconv.ParseFloat(c.Query("lng"), 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "lng is required"})
			return
		}

		limit, _ := strconv.Atoi(c.Query("limit"))

		found, err := h.service.ListNearby(c.Request.Context(), lat, lng, limit)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if found == nil {
			found = []NearbyDeal{}
		}

		c.JSON(http.StatusOK, gin.H{"deals": found})
	}
}
