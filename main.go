package main

import (
	"encoding/base64"
	"log"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"github.com/healthsecure/medichain-service/config"
	httphandler "github.com/healthsecure/medichain-service/http"
	"github.com/healthsecure/medichain-service/pkg/database/postgresql"
	"github.com/healthsecure/medichain-service/pkg/database/redis"
	"github.com/healthsecure/medichain-service/pkg/envconfig"
	"github.com/healthsecure/medichain-service/pkg/google"
	httpmiddleware "github.com/healthsecure/medichain-service/pkg/http/middleware"
	httpserver "github.com/healthsecure/medichain-service/pkg/http/server"
	"github.com/healthsecure/medichain-service/pkg/logger"
	"github.com/healthsecure/medichain-service/repository"
	"github.com/healthsecure/medichain-service/service"
	"github.com/labstack/echo/v4"
)

func main() {
	var cfg config.Config
	if err := envconfig.Parse(&cfg); err != nil {
		log.Fatal(err)
	}
	logger.New(cfg.App.Environment)
	defer logger.Sync()

	pgPool := postgresql.New(
		postgresql.WithHost(cfg.PostgreSQL.Host),
		postgresql.WithPort(cfg.PostgreSQL.Port),
		postgresql.WithUsername(cfg.PostgreSQL.Username),
		postgresql.WithPassword(cfg.PostgreSQL.Password),
		postgresql.WithDBName(cfg.PostgreSQL.DBName),
		postgresql.WithMaxConnLifetime(time.Duration(cfg.PostgreSQL.MaxConnLifetime)*time.Minute),
		postgresql.WithMaxOpenConns(cfg.PostgreSQL.MaxOpenConns),
		postgresql.WithMaxIdleConns(cfg.PostgreSQL.MaxIdleConns),
	)
	defer postgresql.Shutdown(pgPool)

	redisClient := redis.NewClient(
		redis.WithHost(cfg.Redis.Host),
		redis.WithPort(cfg.Redis.Port),
		redis.WithUsername(cfg.Redis.Username),
		redis.WithPassword(cfg.Redis.Password),
		redis.WithMaxOpenConns(10),
		redis.WithMaxIdleConns(2),
	)
	defer redis.Shutdown(redisClient)

	credential, err := base64.StdEncoding.DecodeString(cfg.Google.CloudStorageCredential)
	if err != nil {
		logger.Fatalf("unable to decode cloud storage credential: %+v", err)
	}
	storage := google.NewStorage(credential, cfg.Google.CloudStorageBucket, cfg.Google.SignedURLExpired)
	defer storage.Shutdown()

	httpServer := httpserver.New(
		httpserver.WithPort(cfg.App.Port),
		httpserver.WithMiddlewares([]echo.MiddlewareFunc{
			httpmiddleware.RequestID,
			httpmiddleware.NewProfileProvider(
				cfg.App.JWTKey,
				redisClient,
				"GET /livez",
				"GET /readyz",
				"POST /auth/login",
				"POST /auth/register/patient",
				"POST /auth/register/doctor",
				"POST /auth/token/refresh",
			),
		}),
	)

	userRepository := repository.NewUserRepository(pgPool)
	recordRepository := repository.NewRecordRepository(pgPool)
	accessRepository := repository.NewAccessRepository(pgPool)
	cacheRepository := repository.NewCacheRepository(redisClient, cfg.App.AccessTokenExpired, cfg.App.RefreshTokenExpired)

	jwtService := service.NewJWTService(cfg.App.JWTKey, cfg.App.AccessTokenExpired, cfg.App.RefreshTokenExpired)
	authenService := service.NewAuthenService(userRepository, cacheRepository, jwtService)
	userService := service.NewUserService(userRepository, recordRepository, storage)
	recordService := service.NewRecordService(recordRepository, userRepository, accessRepository, storage)
	accessService := service.NewAccessService(accessRepository, userRepository)

	validate := validator.New()

	router := httpServer.Routers()
	httphandler.NewHealthzHandler(router, pgPool, redisClient)
	httphandler.NewAuthenHandler(router, validate, authenService)
	httphandler.NewUserHandler(router, validate, userService)
	httphandler.NewRecordHandler(router, validate, recordService)
	httphandler.NewAccessHandler(router, validate, accessService)

	httpServer.ListenAndServe()
	httpServer.GracefulShutdown()
}
