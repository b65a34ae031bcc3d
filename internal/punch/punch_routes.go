package punch

import (
	"go-ponto/internal/middleware"
	"go-ponto/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client) {
	punches := r.Group("/punches")
	punches.Use(middleware.AuthMiddleware())
	{
		punches.POST("", middleware.RequireRole(user.RoleEmployee), middleware.PunchLock(rdb), h.Register)
		punches.GET("/today", middleware.RequireRole(user.RoleEmployee), h.Today)
		punches.GET("/history", h.History)
	}
}
