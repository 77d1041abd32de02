package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/catalog/internal/database"
	"github.com/openshelf/catalog/internal/database/authors"
	"github.com/openshelf/catalog/internal/database/books"
	"github.com/openshelf/catalog/internal/database/genres"
	"github.com/openshelf/catalog/internal/database/instances"
)

// RouterConfig holds everything NewRouter needs to wire the catalog.
type RouterConfig struct {
	DB            *database.Database
	TemplatesGlob string
	StaticDir     string

	// CSRF protection is enabled when a secret is present.
	CSRFSecret    []byte
	SecureCookies bool
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	if len(cfg.CSRFSecret) > 0 {
		router.Use(CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	router.LoadHTMLGlob(cfg.TemplatesGlob)
	if cfg.StaticDir != "" {
		router.Static("/static", cfg.StaticDir)
	}

	authorRepo := authors.NewRepository(cfg.DB.DB)
	genreRepo := genres.NewRepository(cfg.DB.DB)
	bookRepo := books.NewRepository(cfg.DB.DB)
	instanceRepo := instances.NewRepository(cfg.DB.DB)

	home := NewHomeController(bookRepo, instanceRepo, authorRepo, genreRepo)
	authorCtrl := NewAuthorsController(authorRepo, bookRepo)
	genreCtrl := NewGenresController(genreRepo, bookRepo)
	bookCtrl := NewBooksController(bookRepo, authorRepo, genreRepo, instanceRepo)
	instanceCtrl := NewInstancesController(instanceRepo, bookRepo)

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/catalog")
	})

	catalog := router.Group("/catalog")
	{
		catalog.GET("", home.Index)

		catalog.GET("/books", bookCtrl.List)
		catalog.GET("/book/create", bookCtrl.CreateGet)
		catalog.POST("/book/create", bookCtrl.CreatePost)
		catalog.GET("/book/:id", bookCtrl.Detail)
		catalog.GET("/book/:id/update", bookCtrl.UpdateGet)
		catalog.POST("/book/:id/update", bookCtrl.UpdatePost)
		catalog.GET("/book/:id/delete", bookCtrl.DeleteGet)
		catalog.POST("/book/:id/delete", bookCtrl.DeletePost)

		catalog.GET("/authors", authorCtrl.List)
		catalog.GET("/author/create", authorCtrl.CreateGet)
		catalog.POST("/author/create", authorCtrl.CreatePost)
		catalog.GET("/author/:id", authorCtrl.Detail)
		catalog.GET("/author/:id/update", authorCtrl.UpdateGet)
		catalog.POST("/author/:id/update", authorCtrl.UpdatePost)
		catalog.GET("/author/:id/delete", authorCtrl.DeleteGet)
		catalog.POST("/author/:id/delete", authorCtrl.DeletePost)

		catalog.GET("/genres", genreCtrl.List)
		catalog.GET("/genre/create", genreCtrl.CreateGet)
		catalog.POST("/genre/create", genreCtrl.CreatePost)
		catalog.GET("/genre/:id", genreCtrl.Detail)
		catalog.GET("/genre/:id/update", genreCtrl.UpdateGet)
		catalog.POST("/genre/:id/update", genreCtrl.UpdatePost)
		catalog.GET("/genre/:id/delete", genreCtrl.DeleteGet)
		catalog.POST("/genre/:id/delete", genreCtrl.DeletePost)

		catalog.GET("/bookinstances", instanceCtrl.List)
		catalog.GET("/bookinstance/create", instanceCtrl.CreateGet)
		catalog.POST("/bookinstance/create", instanceCtrl.CreatePost)
		catalog.GET("/bookinstance/:id", instanceCtrl.Detail)
		catalog.GET("/bookinstance/:id/update", instanceCtrl.UpdateGet)
		catalog.POST("/bookinstance/:id/update", instanceCtrl.UpdatePost)
		catalog.GET("/bookinstance/:id/delete", instanceCtrl.DeleteGet)
		catalog.POST("/bookinstance/:id/delete", instanceCtrl.DeletePost)
	}

	return router
}
