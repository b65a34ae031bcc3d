package report

import (
	"go-ponto/internal/middleware"
	"go-ponto/internal/user"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware(), middleware.RequireRole(user.RoleAdmin))
	{
		reports.GET("/dashboard", h.Dashboard)
		reports.GET("/summary", h.Summary)
		reports.GET("/detailed", h.Detailed)
		reports.GET("/print", h.Print)
	}

	exports := r.Group("/exports")
	exports.Use(middleware.AuthMiddleware(), middleware.RequireRole(user.RoleAdmin))
	{
		exports.GET("/history", h.ExportHistory)
		exports.GET("/report", h.ExportReport)
	}
}
