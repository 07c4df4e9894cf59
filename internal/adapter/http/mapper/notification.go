package mapper

import (
	"time"

	"taskhub/internal/adapter/http/dto"
	"taskhub/internal/core/domain"
)

func ToNotificationItems(notifications []domain.Notification) []dto.NotificationItem {
	items := make([]dto.NotificationItem, 0, len(notifications))
	for _, notification := range notifications {
		items = append(items, ToNotificationItem(notification))
	}
	return items
}

func ToNotificationItem(notification domain.Notification) dto.NotificationItem {
	item := dto.NotificationItem{
		ID:        notification.ID.Hex(),
		Type:      notification.Type,
		Content:   notification.Content,
		UserID:    notification.UserID.Hex(),
		Read:      notification.Read,
		CreatedAt: notification.CreatedAt.Format(time.RFC3339),
	}

	if notification.TaskID != nil {
		value := notification.TaskID.Hex()
		item.TaskID = &value
	}

	if notification.Task != nil {
		item.Task = &dto.TaskRef{
			ID:    notification.Task.ID.Hex(),
			Title: notification.Task.Title,
		}
	}

	return item
}
