package router

import (
	"time"

	"infrastreet/internal/deals"
	"infrastreet/internal/menu"
	"infrastreet/internal/middleware"
	"infrastreet/internal/search"
	"infrastreet/internal/vendor"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(
	vendorHandler *vendor.Handler,
	searchHandler *search.Handler,
	menuHandler *menu.Handler,
	dealHandler *deals.Handler,
) *gin.Engine {

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── PUBLIC ─────────────────────────
	r.POST("/vendors", vendorHandler.CreateVendor)
	r.GET("/vendors/nearby", searchHandler.Nearby)
	r.GET("/vendors/:id", vendorHandler.GetVendor)
	r.GET("/deals/nearby", dealHandler.Nearby())

	// ───────────────────────── VENDOR-OWNER ─────────────────────────
	owner := r.Group("/vendors/:id")
	owner.Use(middleware.VendorAuth())
	{
		owner.PATCH("", vendorHandler.UpdateVendor)
		owner.POST("/menu/items", menuHandler.AddItem)
		owner.POST("/menu/upload", menuHandler.UploadMenu)
		owner.GET("/menu/uploads/:uploadID", menuHandler.UploadStatus)
		owner.POST("/deals", dealHandler.CreateDeal())
	}

	return r
}
