package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
)

type NotificationService struct {
	notifications ports.NotificationRepository
	tasks         ports.TaskRepository
}

var _ ports.NotificationService = (*NotificationService)(nil)

func NewNotificationService(notifications ports.NotificationRepository, tasks ports.TaskRepository) *NotificationService {
	return &NotificationService{notifications: notifications, tasks: tasks}
}

func (s *NotificationService) ListUnread(ctx context.Context, requesterID primitive.ObjectID) ([]domain.Notification, error) {
	notifications, err := s.notifications.ListUnread(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	taskIDs := make([]primitive.ObjectID, 0, len(notifications))
	seen := make(map[primitive.ObjectID]struct{})
	for _, n := range notifications {
		if n.TaskID == nil {
			continue
		}
		if _, ok := seen[*n.TaskID]; ok {
			continue
		}
		seen[*n.TaskID] = struct{}{}
		taskIDs = append(taskIDs, *n.TaskID)
	}
	if len(taskIDs) == 0 {
		return notifications, nil
	}

	refs, err := s.tasks.FindRefs(ctx, taskIDs)
	if err != nil {
		return nil, err
	}
	refsByID := make(map[primitive.ObjectID]domain.TaskRef, len(refs))
	for _, ref := range refs {
		refsByID[ref.ID] = ref
	}

	for i := range notifications {
		if notifications[i].TaskID == nil {
			continue
		}
		if ref, ok := refsByID[*notifications[i].TaskID]; ok {
			value := ref
			notifications[i].Task = &value
		}
	}
	return notifications, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, requesterID, notificationID primitive.ObjectID, read bool) (domain.Notification, error) {
	notification, err := s.notifications.GetByID(ctx, notificationID)
	if err != nil {
		return domain.Notification{}, err
	}
	if notification.UserID != requesterID {
		return domain.Notification{}, domain.ErrForbidden
	}

	if err := s.notifications.SetRead(ctx, notificationID, read); err != nil {
		return domain.Notification{}, err
	}

	notification.Read = read
	return notification, nil
}

func (s *NotificationService) EmitTaskAssigned(ctx context.Context, recipientID, taskID primitive.ObjectID, content string) error {
	_, err := s.notifications.Insert(ctx, domain.Notification{
		Type:      domain.NotificationTypeTaskAssigned,
		Content:   content,
		UserID:    recipientID,
		TaskID:    &taskID,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	})
	return err
}

func (s *NotificationService) RemoveForTask(ctx context.Context, taskID primitive.ObjectID) error {
	return s.notifications.DeleteByTask(ctx, taskID)
}
