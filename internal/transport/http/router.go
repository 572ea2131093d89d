package httpserver

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/closetdev/wardrobe/internal/handlers"
	authmw "github.com/closetdev/wardrobe/internal/middleware/auth"
)

type Deps struct {
	DB              *gorm.DB
	Auth            *authmw.Middleware
	AuthHandler     *handlers.AuthHandler
	ItemHandler     *handlers.ItemHandler
	CategoryHandler *handlers.CategoryHandler
	ImageHandler    *handlers.ImageHandler
	SearchHandler   *handlers.SearchHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	e.POST("/signup", d.AuthHandler.Signup)
	e.POST("/login", d.AuthHandler.Login)
	e.POST("/logout", d.AuthHandler.Logout, d.Auth.RequireValidToken)

	e.GET("/categories", d.CategoryHandler.GetCategories)
	e.GET("/categories/:id", d.CategoryHandler.GetCategory)
	e.POST("/categories", d.CategoryHandler.CreateCategory, d.Auth.RequireAuth)
	e.PATCH("/categories/:id", d.CategoryHandler.PatchCategory, d.Auth.RequireAuth)
	e.DELETE("/categories/:id", d.CategoryHandler.DeleteCategory, d.Auth.RequireAuth)

	items := e.Group("/items", d.Auth.RequireAuth)
	items.GET("", d.ItemHandler.GetItems)
	items.POST("", d.ItemHandler.CreateItem)
	items.GET("/:id", d.ItemHandler.GetItem)
	items.PATCH("/:id", d.ItemHandler.PatchItem)
	items.DELETE("/:id", d.ItemHandler.DeleteItem)

	images := e.Group("/images", d.Auth.RequireAuth)
	images.GET("", d.ImageHandler.GetImages)
	images.POST("", d.ImageHandler.CreateImages)
	images.DELETE("/:id", d.ImageHandler.DeleteImage)

	if d.SearchHandler != nil && d.SearchHandler.ES != nil {
		e.GET("/search", d.SearchHandler.Search, d.Auth.RequireAuth)
	}
}
