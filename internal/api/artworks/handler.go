package artworksapi

import (
	"net/http"
	"strconv"

	"galleri-app/internal/artworks"
	"galleri-app/internal/pagecache"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo  *artworks.Repository
	cache *pagecache.Cache
}

func NewHandler(repo *artworks.Repository, cache *pagecache.Cache) *Handler {
	return &Handler{repo: repo, cache: cache}
}

// GET /api/artworks
//
// ?secondary=true narrows the list to the clearance-sale pieces.
func (h *Handler) List(c *gin.Context) {
	secondary := c.Query("secondary") == "true"

	path := "/api/artworks"
	if secondary {
		path = "/api/artworks?secondary=true"
	}
	if cached, ok := h.cache.Get(path); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	res := h.repo.GetAll(c.Request.Context())
	if secondary {
		filtered := make([]artworks.Artwork, 0, len(res.Artworks))
		for _, art := range res.Artworks {
			if art.IsSecondary {
				filtered = append(filtered, art)
			}
		}
		res.Artworks = filtered
	}

	h.cache.Set(path, res)
	c.JSON(http.StatusOK, res)
}

// GET /api/artworks/:id
func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	path := "/api/artworks/" + id

	if cached, ok := h.cache.Get(path); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	art, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	res := gin.H{"artwork": art}
	h.cache.Set(path, res)
	c.JSON(http.StatusOK, res)
}

type updateForm struct {
	Description string `form:"description"`
	Price       string `form:"price"`
	Discount    string `form:"discount"`
	Status      string `form:"status" binding:"omitempty,oneof=available sold"`
	AtGallery   string `form:"atGallery"`
	IsSecondary string `form:"isSecondary"`
}

// PUT /admin/api/artworks/:id
//
// Each field becomes an independent single-cell write; the repository aborts
// on the first failure, so a multi-field update can partially apply.
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Mangler ID for kunstværk.", "errors": true})
		return
	}

	var form updateForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Data er ugyldig.", "errors": true})
		return
	}

	fields := map[string]interface{}{
		"description": form.Description,
		"price":       parseFormNumber(form.Price),
		"discount":    parseFormNumber(form.Discount),
		"status":      form.Status,
		"atGallery":   form.AtGallery == "on",
		"isSecondary": form.IsSecondary == "on",
	}

	if err := h.repo.Patch(c.Request.Context(), id, fields); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Fejl: " + err.Error(), "errors": true})
		return
	}

	h.cache.Invalidate("/api/artworks", "/api/artworks?secondary=true", "/api/artworks/"+id)
	c.JSON(http.StatusOK, gin.H{"message": "Værket er blevet opdateret."})
}

// parseFormNumber treats an empty or malformed admin-form value as zero, the
// sheet's default for commercial fields.
func parseFormNumber(value string) float64 {
	if value == "" {
		return 0
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return n
}
