package tests

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskhub/internal/adapter/http/middleware"
	"taskhub/internal/core/domain"
)

// asUser stands in for AuthMiddleware and plants the requester id the
// way the real middleware would after a successful token check.
func asUser(userID primitive.ObjectID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	}
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) List(ctx context.Context, requesterID primitive.ObjectID, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, requesterID, filter)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) Get(ctx context.Context, taskID primitive.ObjectID) (domain.Task, error) {
	args := m.Called(ctx, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Create(ctx context.Context, requesterID primitive.ObjectID, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, requesterID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Update(ctx context.Context, requesterID, taskID primitive.ObjectID, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, requesterID, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Delete(ctx context.Context, requesterID, taskID primitive.ObjectID) error {
	args := m.Called(ctx, requesterID, taskID)
	return args.Error(0)
}

type notificationServiceMock struct {
	mock.Mock
}

func (m *notificationServiceMock) ListUnread(ctx context.Context, requesterID primitive.ObjectID) ([]domain.Notification, error) {
	args := m.Called(ctx, requesterID)

	var notifications []domain.Notification
	if value := args.Get(0); value != nil {
		notifications = value.([]domain.Notification)
	}
	return notifications, args.Error(1)
}

func (m *notificationServiceMock) MarkRead(ctx context.Context, requesterID, notificationID primitive.ObjectID, read bool) (domain.Notification, error) {
	args := m.Called(ctx, requesterID, notificationID, read)
	return args.Get(0).(domain.Notification), args.Error(1)
}

func (m *notificationServiceMock) EmitTaskAssigned(ctx context.Context, recipientID, taskID primitive.ObjectID, content string) error {
	args := m.Called(ctx, recipientID, taskID, content)
	return args.Error(0)
}

func (m *notificationServiceMock) RemoveForTask(ctx context.Context, taskID primitive.ObjectID) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}

type userServiceMock struct {
	mock.Mock
}

func (m *userServiceMock) List(ctx context.Context) ([]domain.UserSummary, error) {
	args := m.Called(ctx)

	var summaries []domain.UserSummary
	if value := args.Get(0); value != nil {
		summaries = value.([]domain.UserSummary)
	}
	return summaries, args.Error(1)
}

func (m *userServiceMock) Register(ctx context.Context, input domain.RegisterInput) (domain.User, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.User), args.Error(1)
}
