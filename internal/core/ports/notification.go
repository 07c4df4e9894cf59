package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskhub/internal/core/domain"
)

type NotificationRepository interface {
	ListUnread(ctx context.Context, userID primitive.ObjectID) ([]domain.Notification, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (domain.Notification, error)
	SetRead(ctx context.Context, id primitive.ObjectID, read bool) error
	Insert(ctx context.Context, notification domain.Notification) (primitive.ObjectID, error)
	DeleteByTask(ctx context.Context, taskID primitive.ObjectID) error
}

type NotificationService interface {
	ListUnread(ctx context.Context, requesterID primitive.ObjectID) ([]domain.Notification, error)
	MarkRead(ctx context.Context, requesterID, notificationID primitive.ObjectID, read bool) (domain.Notification, error)
	// EmitTaskAssigned records an assignment notification. There is no
	// foreign-key check on the recipient: the store holds notifications
	// addressed to any well-formed id.
	EmitTaskAssigned(ctx context.Context, recipientID, taskID primitive.ObjectID, content string) error
	// RemoveForTask deletes every notification referencing the task.
	// Invoked by the task delete cascade.
	RemoveForTask(ctx context.Context, taskID primitive.ObjectID) error
}
