package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/adoption-tracker/internal/api/handlers"
	"github.com/linskybing/adoption-tracker/internal/api/middleware"
)

// FormRoutes registers form endpoints. Static paths are declared before /:id.
func FormRoutes(rg *gin.RouterGroup, h *handlers.FormHandler) {
	forms := rg.Group("/forms")
	{
		forms.POST("", h.CreateForm)
		forms.GET("", h.ListForms)
		forms.POST("/by-ids", h.GetFormsByIDs)
		forms.GET("/animal/:animal_id", h.ListFormsByAnimal)
		forms.GET("/pending-send", h.ListPendingSend)
		forms.GET("/pending-control", h.ListPendingControl)
		forms.GET("/pending-fill", h.ListPendingFill)
		forms.POST("/generate-periodic", middleware.Admin(), h.GeneratePeriodic)
		forms.GET("/:id", h.GetForm)
		forms.PUT("/:id", h.UpdateFormStatus)
		forms.DELETE("/:id", h.DeleteForm)
	}
}
