package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskhub/internal/core/domain"
)

type taskRepoMock struct {
	mock.Mock
}

func (m *taskRepoMock) List(ctx context.Context, query domain.TaskQuery) ([]domain.Task, error) {
	args := m.Called(ctx, query)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepoMock) GetByID(ctx context.Context, id primitive.ObjectID) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepoMock) Insert(ctx context.Context, task domain.Task) (primitive.ObjectID, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *taskRepoMock) Update(ctx context.Context, id primitive.ObjectID, input domain.UpdateTaskInput, updatedAt time.Time) error {
	args := m.Called(ctx, id, input, updatedAt)
	return args.Error(0)
}

func (m *taskRepoMock) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *taskRepoMock) FindRefs(ctx context.Context, ids []primitive.ObjectID) ([]domain.TaskRef, error) {
	args := m.Called(ctx, ids)

	var refs []domain.TaskRef
	if value := args.Get(0); value != nil {
		refs = value.([]domain.TaskRef)
	}
	return refs, args.Error(1)
}

type userRepoMock struct {
	mock.Mock
}

func (m *userRepoMock) ListSummaries(ctx context.Context) ([]domain.UserSummary, error) {
	args := m.Called(ctx)

	var summaries []domain.UserSummary
	if value := args.Get(0); value != nil {
		summaries = value.([]domain.UserSummary)
	}
	return summaries, args.Error(1)
}

func (m *userRepoMock) FindSummaries(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]domain.UserSummary, error) {
	args := m.Called(ctx, ids)

	var summaries map[primitive.ObjectID]domain.UserSummary
	if value := args.Get(0); value != nil {
		summaries = value.(map[primitive.ObjectID]domain.UserSummary)
	}
	return summaries, args.Error(1)
}

func (m *userRepoMock) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepoMock) Insert(ctx context.Context, user domain.User) (primitive.ObjectID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

type notificationRepoMock struct {
	mock.Mock
}

func (m *notificationRepoMock) ListUnread(ctx context.Context, userID primitive.ObjectID) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)

	var notifications []domain.Notification
	if value := args.Get(0); value != nil {
		notifications = value.([]domain.Notification)
	}
	return notifications, args.Error(1)
}

func (m *notificationRepoMock) GetByID(ctx context.Context, id primitive.ObjectID) (domain.Notification, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Notification), args.Error(1)
}

func (m *notificationRepoMock) SetRead(ctx context.Context, id primitive.ObjectID, read bool) error {
	args := m.Called(ctx, id, read)
	return args.Error(0)
}

func (m *notificationRepoMock) Insert(ctx context.Context, notification domain.Notification) (primitive.ObjectID, error) {
	args := m.Called(ctx, notification)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *notificationRepoMock) DeleteByTask(ctx context.Context, taskID primitive.ObjectID) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}

type notifierMock struct {
	mock.Mock
}

func (m *notifierMock) ListUnread(ctx context.Context, requesterID primitive.ObjectID) ([]domain.Notification, error) {
	args := m.Called(ctx, requesterID)

	var notifications []domain.Notification
	if value := args.Get(0); value != nil {
		notifications = value.([]domain.Notification)
	}
	return notifications, args.Error(1)
}

func (m *notifierMock) MarkRead(ctx context.Context, requesterID, notificationID primitive.ObjectID, read bool) (domain.Notification, error) {
	args := m.Called(ctx, requesterID, notificationID, read)
	return args.Get(0).(domain.Notification), args.Error(1)
}

func (m *notifierMock) EmitTaskAssigned(ctx context.Context, recipientID, taskID primitive.ObjectID, content string) error {
	args := m.Called(ctx, recipientID, taskID, content)
	return args.Error(0)
}

func (m *notifierMock) RemoveForTask(ctx context.Context, taskID primitive.ObjectID) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}
