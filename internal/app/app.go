package app

import (
	"context"
	"os"

	"go-ponto/internal/middleware"
	"go-ponto/internal/punch"
	"go-ponto/internal/shared/connection"
	"go-ponto/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine) error {
	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(connection.PostgresConfig{
		Host:     os.Getenv("DB_HOST"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		DBName:   os.Getenv("DB_NAME"),
		Port:     os.Getenv("DB_PORT"),
		SSLMode:  os.Getenv("DB_SSLMODE"),
	}, 5)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	zap.L().Info("redis connection established")

	if err := gormDB.AutoMigrate(&user.User{}, &punch.Punch{}); err != nil {
		return err
	}

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	// First boot seeds the default admin account
	userService := user.NewService(user.NewRepository(gormDB))
	if err := userService.EnsureAdmin(context.Background()); err != nil {
		return err
	}

	router.Use(middleware.RequestID(), middleware.ContextLogger(zap.L()))

	return registerModules(router, db, gormDB, redisClient, userService)
}
