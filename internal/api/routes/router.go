package routes

import (
	"github.com/gin-gonic/gin"
	_ "github.com/linskybing/adoption-tracker/docs"
	"github.com/linskybing/adoption-tracker/internal/api/handlers"
	"github.com/linskybing/adoption-tracker/internal/api/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes mounts every endpoint on r. Metrics are served from gatherer.
func RegisterRoutes(r *gin.Engine, h *handlers.Handlers, gatherer prometheus.Gatherer) {
	r.GET("/", handlers.Root)
	r.GET("/health", handlers.Health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/login", h.User.Login)
	r.POST("/token", h.User.Token)
	r.POST("/logout", h.User.Logout)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/ws/forms", h.Events.StreamForms)

		users := auth.Group("/users")
		{
			users.POST("", middleware.Admin(), h.User.Register)
			users.GET("", middleware.Admin(), h.User.GetUsers)
			users.GET("/:id", h.User.GetUserByID)
			users.PUT("/:id", middleware.Admin(), h.User.UpdateUser)
			users.DELETE("/:id", middleware.Admin(), h.User.DeleteUser)
		}

		animals := auth.Group("/animals")
		{
			animals.POST("", h.Animal.CreateAnimal)
			animals.GET("", h.Animal.ListAnimals)
			animals.GET("/:id", h.Animal.GetAnimal)
			animals.PUT("/:id", h.Animal.UpdateAnimal)
			animals.DELETE("/:id", h.Animal.DeleteAnimal)
			animals.POST("/:id/create-form", h.Animal.CreateForm)
		}

		FormRoutes(auth, h.Form)

		audit := auth.Group("/audit/logs")
		{
			audit.GET("", middleware.Admin(), h.Audit.GetAuditLogs)
		}
	}
}
