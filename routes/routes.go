package routes

import (
	"net/http"
	"strings"

	"github.com/NithinKrishna10/Menu-Card/controllers"
	"github.com/NithinKrishna10/Menu-Card/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// Public menu card, keyed by user_id query parameter
	r.GET("/category", controllers.GetMenuCategories)
	r.GET("/category/:id", controllers.GetMenuCategory)
	r.GET("/product", controllers.GetMenuProducts)
	// Gin cannot register /product/text/ next to /product/:id, the
	// text-search segment is dispatched here instead.
	r.GET("/product/:id", func(c *gin.Context) {
		if c.Param("id") == "text" {
			controllers.SearchMenuProducts(c)
			return
		}
		controllers.GetMenuProduct(c)
	})
	r.GET("/advertisement", controllers.GetMenuAdvertisements)

	// Account surface
	r.POST("/user", controllers.RegisterUser)
	r.POST("/login", controllers.Login)
	r.GET("/users", controllers.GetUsers)

	auth := r.Group("/", middleware.Auth())
	{
		auth.GET("/user/me", controllers.GetMe)
		auth.PATCH("/user", controllers.UpdateUser)
		auth.DELETE("/user", controllers.DeleteUser)
		auth.DELETE("/db_user", middleware.Superuser(), controllers.DbDeleteUser)

		auth.GET("/user/category", controllers.GetCategories)
		auth.GET("/user/category/:id", controllers.GetCategory)
		auth.POST("/user/category", controllers.CreateCategory)
		auth.PATCH("/user/category/:id", controllers.UpdateCategory)
		auth.DELETE("/user/category/:id", controllers.DeleteCategory)

		auth.GET("/user/product", controllers.GetProducts)
		auth.GET("/user/product/:id", controllers.GetProduct)
		auth.POST("/user/product", controllers.CreateProduct)
		auth.PATCH("/user/product/:id", controllers.UpdateProduct)
		auth.DELETE("/user/product/:id", controllers.DeleteProduct)

		auth.GET("/user/productportion", controllers.GetPortions)
		auth.POST("/user/productportion", controllers.CreatePortion)
		auth.PATCH("/user/productportion/:id", controllers.UpdatePortion)
		auth.DELETE("/user/productportion/:id", controllers.DeletePortion)

		auth.GET("/user/advertisement", controllers.GetAdvertisements)
		auth.GET("/user/advertisement/:id", controllers.GetAdvertisement)
		auth.POST("/user/advertisement", controllers.CreateAdvertisement)
		auth.PATCH("/user/advertisement/:id", controllers.UpdateAdvertisement)
		auth.DELETE("/user/advertisement/:id", controllers.DeleteAdvertisement)
	}

	// Leads intake is public
	r.GET("/user/leads", controllers.GetLeadses)
	r.GET("/user/leads/:id", controllers.GetLeads)
	r.POST("/user/leads", controllers.CreateLeads)
	r.DELETE("/user/leads/:id", controllers.DeleteLeads)

	// Gin cannot register /user/:username next to the static /user/
	// routes above, so the public profile read matches here. The static
	// routes keep winning for their own segments.
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			if name, ok := strings.CutPrefix(c.Request.URL.Path, "/user/"); ok && name != "" && !strings.Contains(name, "/") {
				c.Params = append(c.Params, gin.Param{Key: "username", Value: name})
				controllers.GetUserByUsername(c)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	})
}
