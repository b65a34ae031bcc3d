package user

import (
	"go-ponto/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware(), middleware.RequireRole(RoleAdmin))
	{
		users.POST("", h.Create)
		users.GET("", h.ListEmployees)
		users.GET("/:id", h.GetByID)
	}
}
