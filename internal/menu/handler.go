package menu

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// vendorFromToken checks that the authenticated vendor matches the
// :id path segment. Menu mutation is owner-only.
func vendorFromToken(c *gin.Context) (string, bool) {
	vendorID := c.GetString("vendorID")
	if vendorID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return "", false
	}
	if vendorID != c.Param("id") {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your vendor"})
		return "", false
	}
	return vendorID, true
}

// --------------------------------------------------
// POST /vendors/:id/menu/items
// --------------------------------------------------
func (h *Handler) AddItem(c *gin.Context) {
	vendorID, ok := vendorFromToken(c)
	if !ok {
		return
	}

	var req struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.service.AddItem(
		c.Request.Context(),
		vendorID,
		req.Name,
		req.Description,
		req.Price,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// --------------------------------------------------
// POST /vendors/:id/menu/upload
// --------------------------------------------------
func (h *Handler) UploadMenu(c *gin.Context) {
	vendorID, ok := vendorFromToken(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("menu_image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu_image is required"})
		return
	}
	defer file.Close()

	uploadID, objectKey, err := h.service.UploadMenuImage(
		c.Request.Context(),
		vendorID,
		file,
		header.Filename,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"uploadId":   uploadID,
		"object_key": objectKey,
		"status":     StatusUploaded,
		"message":    "Menu uploaded. Items will appear once OCR finishes.",
	})
}

// --------------------------------------------------
// GET /vendors/:id/menu/uploads/:uploadID
// --------------------------------------------------
func (h *Handler) UploadStatus(c *gin.Context) {
	vendorID, ok := vendorFromToken(c)
	if !ok {
		return
	}

	uploadID, err := strconv.Atoi(c.Param("uploadID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid upload id"})
		return
	}

	up, err := h.service.UploadStatus(c.Request.Context(), vendorID, uploadID)
	if err != nil {
		if errors.Is(err, ErrNotUploadOwner) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "upload not found"})
		return
	}

	c.JSON(http.StatusOK, up)
}
