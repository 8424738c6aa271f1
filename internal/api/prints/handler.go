package printsapi

import (
	"net/http"

	"galleri-app/internal/pagecache"
	"galleri-app/internal/prints"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	catalog *prints.Catalog
	cache   *pagecache.Cache
}

func NewHandler(catalog *prints.Catalog, cache *pagecache.Cache) *Handler {
	return &Handler{catalog: catalog, cache: cache}
}

// GET /api/prints
func (h *Handler) List(c *gin.Context) {
	if cached, ok := h.cache.Get("/api/prints"); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	res := gin.H{"artPrints": h.catalog.GetAll()}
	h.cache.Set("/api/prints", res)
	c.JSON(http.StatusOK, res)
}

// GET /api/prints/:id
func (h *Handler) Get(c *gin.Context) {
	print, ok := h.catalog.GetByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Kunsttryk blev ikke fundet."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"artPrint": print})
}

type replaceRequest struct {
	ArtPrints []prints.ArtPrint `json:"artPrints" binding:"required"`
}

// PUT /admin/api/prints
//
// The catalog is edited as a whole list; there is no per-item patch.
func (h *Handler) Replace(c *gin.Context) {
	var req replaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Data er ugyldig.", "errors": true})
		return
	}

	if err := h.catalog.ReplaceAll(req.ArtPrints); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Fejl: " + err.Error(), "errors": true})
		return
	}

	h.cache.Invalidate("/api/prints")
	c.JSON(http.StatusOK, gin.H{"message": "Kunsttryk er blevet opdateret."})
}
