package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/zap"

	dbadapter "taskhub/internal/adapter/db"
	httpadapter "taskhub/internal/adapter/http"
	"taskhub/internal/adapter/http/handlers"
	httpmiddleware "taskhub/internal/adapter/http/middleware"
	appservice "taskhub/internal/app/service"
	"taskhub/internal/config"
	"taskhub/pkg/auth"
	"taskhub/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()

	client, err := dbadapter.Connect(context.Background(), cfg)
	if err != nil {
		logger.Fatal("failed to connect to mongo", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Warn("failed to disconnect from mongo", zap.Error(err))
		}
	}()

	collections := dbadapter.NewCollections(client, cfg.MongoDatabase)
	taskRepository := dbadapter.NewTaskRepository(collections)
	userRepository := dbadapter.NewUserRepository(collections)
	notificationRepository := dbadapter.NewNotificationRepository(collections)

	notificationService := appservice.NewNotificationService(notificationRepository, taskRepository)
	taskService := appservice.NewTaskService(taskRepository, userRepository, notificationService)
	userService := appservice.NewUserService(userRepository)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	healthHandler := handlers.NewHealthHandler(client)
	taskHandler := handlers.NewTaskHandler(taskService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	userHandler := handlers.NewUserHandler(userService, tokens)
	httpadapter.RegisterRoutes(r, tokens, healthHandler, taskHandler, notificationHandler, userHandler)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "Accept-Language"},
		AllowCredentials: true,
	}).Handler(r)

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, corsHandler); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
