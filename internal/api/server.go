package api

import (
	"context"
	"strings"
	"time"

	"storerating/internal/app/auth"
	"storerating/internal/app/config"
	"storerating/internal/app/handler"
	"storerating/internal/app/middleware"
	"storerating/internal/app/redis"
	"storerating/internal/app/repository"
	"storerating/internal/app/service"
	"storerating/internal/app/storage"
	"storerating/internal/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func StartServer() {
	log.Info("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg.Log.Apply()

	if cfg.DSN == "" {
		log.Fatal("DSN string is empty. Check your .env file")
	}
	repo, err := repository.New(cfg.DSN)
	if err != nil {
		log.Fatalf("failed to init repository: %v", err)
	}
	defer repo.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var throttle service.LoginThrottle
	if cfg.Redis.Enabled() {
		redisClient, err := redis.New(ctx, cfg.Redis, cfg.Auth.LoginLockout)
		if err != nil {
			log.WithError(err).Warn("redis unavailable, login throttling disabled")
		} else {
			defer redisClient.Close()
			throttle = redisClient
		}
	}

	var images service.ImageStorage
	if cfg.MinIO.Enabled() {
		minioClient, err := storage.NewMinIOClient(ctx, cfg.MinIO.Endpoint, cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, cfg.MinIO.Bucket, cfg.MinIO.UseSSL)
		if err != nil {
			log.WithError(err).Warn("minio unavailable, store image upload disabled")
		} else {
			images = minioClient
		}
	}

	issuer, err := auth.NewIssuer(cfg.JWT.Token, cfg.JWT.ExpiresIn)
	if err != nil {
		log.Fatalf("failed to init token issuer: %v", err)
	}
	hasher := auth.NewHasher(cfg.Auth.BcryptCost)

	authHandler := handler.NewAuthHandler(service.NewAuthService(repo, hasher, issuer, throttle, service.AuthOptions{
		DistinctLoginErrors: cfg.Auth.DistinctLoginErrors,
		MaxLoginAttempts:    cfg.Auth.MaxLoginAttempts,
	}))
	apiHandler := handler.NewAPIHandler(
		service.NewAdminService(repo, repo, repo, hasher, service.AdminOptions{
			AdminCanCreateAdmins: cfg.Auth.AdminCanCreateAdmins,
		}),
		service.NewUserService(repo, repo),
		service.NewOwnerService(repo, images),
		authHandler,
	)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(), cors.New(CORSConfig(cfg.CORS)))

	app := pkg.NewApp(cfg, router, apiHandler, middleware.NewAuthMiddleware(issuer))
	app.RunApp()

	log.Info("Server down")
}

// CORSConfig builds the gin-contrib/cors settings. A "*" origin allows all.
func CORSConfig(c config.CORSConfig) cors.Config {
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}

	for _, origin := range c.AllowOrigins {
		if strings.TrimSpace(origin) == "*" {
			corsConfig.AllowAllOrigins = true
			return corsConfig
		}
	}
	corsConfig.AllowOrigins = c.AllowOrigins
	return corsConfig
}
