package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const NotificationTypeTaskAssigned = "TASK_ASSIGNED"

type Notification struct {
	ID        primitive.ObjectID
	Type      string
	Content   string
	UserID    primitive.ObjectID
	TaskID    *primitive.ObjectID
	Read      bool
	CreatedAt time.Time

	// Task is the {id, title} enrichment of the referenced task,
	// populated by the service layer when TaskID is set.
	Task *TaskRef
}
