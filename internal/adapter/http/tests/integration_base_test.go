//go:build integration
// +build integration

package tests

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	dbadapter "taskhub/internal/adapter/db"
	httpadapter "taskhub/internal/adapter/http"
	"taskhub/internal/adapter/http/handlers"
	appservice "taskhub/internal/app/service"
	"taskhub/pkg/auth"
	"taskhub/pkg/translator"
)

const testTokenSecret = "integration-secret"

type IntegrationSuiteBase struct {
	suite.Suite

	client *mongo.Client
	DB     *mongo.Database
	Tokens *auth.TokenManager

	testDBName string
}

func (s *IntegrationSuiteBase) SetupSuite() {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  filepath.Join(projectRoot(), "pkg", "translator", "translation"),
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	uri := envOrDefault("MONGO_TEST_URI", "mongodb://127.0.0.1:27017")
	database := envOrDefault("MONGO_TEST_DATABASE", "taskhub_test")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err == nil {
		err = client.Ping(ctx, readpref.Primary())
	}
	if err != nil {
		s.T().Skipf("skipping integration suite: could not connect to mongo: %v", err)
	}

	s.client = client
	s.testDBName = database
	s.DB = client.Database(database)
	s.Tokens = auth.NewTokenManager(testTokenSecret, time.Hour)
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	if s.client == nil {
		return
	}

	// Drop the test database to keep local environment clean after
	// integration runs.
	if s.DB != nil && strings.HasSuffix(s.testDBName, "_test") {
		s.Require().NoError(s.DB.Drop(context.Background()))
	}
	s.Require().NoError(s.client.Disconnect(context.Background()))
}

func (s *IntegrationSuiteBase) ResetDatabase() {
	for _, name := range []string{"users", "tasks", "notifications"} {
		s.Require().NoError(s.DB.Collection(name).Drop(context.Background()))
	}
}

// NewRouter wires the full stack against the test database, the same
// construction order main uses.
func (s *IntegrationSuiteBase) NewRouter() *gin.Engine {
	collections := dbadapter.NewCollections(s.client, s.testDBName)

	taskRepository := dbadapter.NewTaskRepository(collections)
	userRepository := dbadapter.NewUserRepository(collections)
	notificationRepository := dbadapter.NewNotificationRepository(collections)

	notificationService := appservice.NewNotificationService(notificationRepository, taskRepository)
	taskService := appservice.NewTaskService(taskRepository, userRepository, notificationService)
	userService := appservice.NewUserService(userRepository)

	router := gin.New()
	httpadapter.RegisterRoutes(
		router,
		s.Tokens,
		handlers.NewHealthHandler(s.client),
		handlers.NewTaskHandler(taskService),
		handlers.NewNotificationHandler(notificationService),
		handlers.NewUserHandler(userService, s.Tokens),
	)
	return router
}

func projectRoot() string {
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", "..", ".."))
}

func envOrDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
