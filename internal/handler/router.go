package handler

import (
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups the route handlers of the site.
type Handlers struct {
	Pages   *PageHandler
	API     *APIHandler
	Contact *ContactHandler
	Sitemap *SitemapHandler
}

// NewRouter wires every route onto a new engine.
func NewRouter(h Handlers, templates *template.Template, static fs.FS, middleware ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(middleware...)
	r.SetHTMLTemplate(templates)
	r.StaticFS("/static", http.FS(static))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/sitemap.xml", h.Sitemap.Sitemap)

	r.GET("/", h.Pages.Home)
	r.GET("/groomers", h.Pages.Groomers)
	r.GET("/groomers/:slug", h.Pages.GroomerBySlug)
	r.GET("/service/:slug", h.Pages.Specialization)

	api := r.Group("/api")
	{
		api.GET("/groomers", h.API.ListGroomers)
		api.GET("/resolve/:slug", h.API.Resolve)
		api.GET("/locations", h.API.Locations)
		api.GET("/specializations", h.API.Specializations)
		api.GET("/featured", h.API.Featured)
		api.POST("/contact", h.Contact.Submit)
	}

	r.NoRoute(h.Pages.Segment)

	return r
}
