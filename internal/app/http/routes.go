package routes

import (
	"net/http"

	artistsapi "booking-app/internal/api/artists"
	homeapi "booking-app/internal/api/home"
	"booking-app/internal/api/respond"
	showsapi "booking-app/internal/api/shows"
	venuesapi "booking-app/internal/api/venues"
	"booking-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers bundles the request handlers the route table dispatches to.
type Handlers struct {
	Home    *homeapi.Handler
	Venues  *venuesapi.Handler
	Artists *artistsapi.Handler
	Shows   *showsapi.Handler
}

// RegisterRoutes wires the booking directory. Reads are public; every write
// passes the input sanitiser and, when editorSecret is set, the editor guard.
func RegisterRoutes(r *gin.Engine, h Handlers, editorSecret string) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.NoRoute(respond.NotFound)

	r.GET("/", h.Home.Summary)

	r.GET("/venues", h.Venues.List)
	r.GET("/venues/create", h.Venues.CreateForm)
	r.GET("/venues/:id", h.Venues.Get)
	r.GET("/venues/:id/edit", h.Venues.EditForm)

	r.GET("/artists", h.Artists.List)
	r.GET("/artists/create", h.Artists.CreateForm)
	r.GET("/artists/:id", h.Artists.Get)
	r.GET("/artists/:id/edit", h.Artists.EditForm)

	r.GET("/shows", h.Shows.List)
	r.GET("/shows/create", h.Shows.CreateForm)
	r.GET("/shows/:id", h.Shows.Get)

	public := r.Group("/")
	public.Use(middleware.SanitizeInput())
	public.POST("/venues/search", h.Venues.Search)
	public.POST("/artists/search", h.Artists.Search)

	// Editors
	edit := public.Group("/")
	edit.Use(middleware.EditorGuard(editorSecret)...)

	edit.POST("/venues/create", h.Venues.Create)
	edit.POST("/venues/:id/edit", h.Venues.Edit)
	edit.POST("/venues/:id", h.Venues.Delete)
	edit.DELETE("/venues/:id", h.Venues.Delete)

	edit.POST("/artists/create", h.Artists.Create)
	edit.POST("/artists/:id/edit", h.Artists.Edit)

	edit.POST("/shows/create", h.Shows.Create)
}
