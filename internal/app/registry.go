package app

import (
	"database/sql"

	"go-ponto/internal/auth"
	"go-ponto/internal/punch"
	"go-ponto/internal/report"
	"go-ponto/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	userService user.Service,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	punchRepo := punch.NewRepository(gormDB)
	reportRepo := report.NewRepository(gormDB)

	// --- Services ---
	authService := auth.NewService(authRepo)
	punchService := punch.NewService(db, punchRepo)
	reportService := report.NewService(reportRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(userService)
	punchHandler := punch.NewHandlerWithRedis(punchService, rdb)
	reportHandler := report.NewHandler(reportService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		user.RegisterRoutes(api, userHandler)
		punch.RegisterRoutes(api, punchHandler, rdb)
		report.RegisterRoutes(api, reportHandler)
	}

	return nil
}
