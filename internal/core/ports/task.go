package ports

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskhub/internal/core/domain"
)

type TaskRepository interface {
	List(ctx context.Context, query domain.TaskQuery) ([]domain.Task, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (domain.Task, error)
	Insert(ctx context.Context, task domain.Task) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, input domain.UpdateTaskInput, updatedAt time.Time) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	// FindRefs resolves {id, title} pairs for notification enrichment.
	FindRefs(ctx context.Context, ids []primitive.ObjectID) ([]domain.TaskRef, error)
}

type TaskService interface {
	List(ctx context.Context, requesterID primitive.ObjectID, filter domain.TaskFilter) ([]domain.Task, error)
	Get(ctx context.Context, taskID primitive.ObjectID) (domain.Task, error)
	Create(ctx context.Context, requesterID primitive.ObjectID, input domain.CreateTaskInput) (domain.Task, error)
	Update(ctx context.Context, requesterID, taskID primitive.ObjectID, input domain.UpdateTaskInput) (domain.Task, error)
	Delete(ctx context.Context, requesterID, taskID primitive.ObjectID) error
}
