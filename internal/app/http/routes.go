package routes

import (
	artworksapi "galleri-app/internal/api/artworks"
	authapi "galleri-app/internal/api/auth"
	calendarapi "galleri-app/internal/api/calendar"
	contactapi "galleri-app/internal/api/contact"
	contentapi "galleri-app/internal/api/content"
	printsapi "galleri-app/internal/api/prints"
	"galleri-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers bundles the constructed handler objects main wires together.
type Handlers struct {
	Artworks *artworksapi.Handler
	Calendar *calendarapi.Handler
	Content  *contentapi.Handler
	Prints   *printsapi.Handler
	Contact  *contactapi.Handler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/api")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.GET("/content", h.Content.Get)
	public.GET("/artworks", h.Artworks.List)
	public.GET("/artworks/:id", h.Artworks.Get)
	public.GET("/calendar", h.Calendar.ListUpcoming)
	public.GET("/prints", h.Prints.List)
	public.GET("/prints/:id", h.Prints.Get)

	public.POST("/contact", h.Contact.Submit)
	public.POST("/login", authapi.Login)
	public.POST("/logout", authapi.Logout)

	// Two stacked gates: Basic Auth at the edge, then the session cookie.
	admin := r.Group("/admin/api")
	admin.Use(middleware.AdminBasicAuth(), middleware.SessionAuth())

	admin.GET("/calendar", h.Calendar.ListAll)

	admin.PUT("/artworks/:id", h.Artworks.Update)
	admin.PUT("/calendar", h.Calendar.Update)
	admin.PUT("/prints", h.Prints.Replace)

	admin.PUT("/content/home", h.Content.UpdateHome)
	admin.PUT("/content/about", h.Content.UpdateAbout)
	admin.PUT("/content/gallery", h.Content.UpdateGallery)
	admin.PUT("/content/contact", h.Content.UpdateContact)
	admin.PUT("/content/footer", h.Content.UpdateFooter)
	admin.PUT("/content/exhibitions", h.Content.UpdateExhibitions)
	admin.PUT("/content/seo", h.Content.UpdateSeo)
	admin.PUT("/content/lagersalg", h.Content.UpdateLagersalg)
}
