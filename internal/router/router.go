package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListItems(c *ginext.Context)
	GetItem(c *ginext.Context)
	GetAvailability(c *ginext.Context)
	CreateItem(c *ginext.Context)
	UpdateItem(c *ginext.Context)
	SeedAvailability(c *ginext.Context)
	RegenerateAvailability(c *ginext.Context)
	DeleteItem(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	UpdateUserTier(c *ginext.Context)
	ListCart(c *ginext.Context)
	AddCartItem(c *ginext.Context)
	RemoveCartItem(c *ginext.Context)
	Checkout(c *ginext.Context)
	ClearCart(c *ginext.Context)
}

// Guards are the per-group middlewares. A nil RateLimit disables limiting.
type Guards struct {
	Auth      ginext.HandlerFunc
	Admin     ginext.HandlerFunc
	RateLimit ginext.HandlerFunc
}

func InitRouter(mode string, h Handler, g Guards, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Catalog
		api.GET("/items", h.ListItems)
		api.GET("/items/:id", h.GetItem)
		api.GET("/items/:id/availability", h.GetAvailability)
	}

	admin := api.Group("", g.Auth, g.Admin)
	{
		admin.POST("/items", h.CreateItem)
		admin.PUT("/items/:id", h.UpdateItem)
		admin.DELETE("/items/:id", h.DeleteItem)
		admin.POST("/items/:id/availability", h.SeedAvailability)
		admin.PUT("/items/:id/availability", h.RegenerateAvailability)

		admin.POST("/users", h.CreateUser)
		admin.GET("/users", h.ListUsers)
		admin.PUT("/users/:id/tier", h.UpdateUserTier)
	}

	cart := api.Group("/cart", g.Auth)
	{
		add := []ginext.HandlerFunc{h.AddCartItem}
		if g.RateLimit != nil {
			add = append([]ginext.HandlerFunc{g.RateLimit}, add...)
		}

		cart.GET("", h.ListCart)
		cart.POST("/items", add...)
		cart.DELETE("/items/:id", h.RemoveCartItem)
		cart.POST("/checkout", h.Checkout)
		cart.DELETE("", h.ClearCart)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
