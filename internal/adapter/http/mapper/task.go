package mapper

import (
	"time"

	"taskhub/internal/adapter/http/dto"
	"taskhub/internal/core/domain"
)

const dueDateLayout = "2006-01-02"

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:          task.ID.Hex(),
		Title:       task.Title,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		CreatedByID: task.CreatedByID.Hex(),
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.DueDate != nil {
		value := task.DueDate.Format(dueDateLayout)
		item.DueDate = &value
	}

	if task.AssignedToID != nil {
		value := task.AssignedToID.Hex()
		item.AssignedToID = &value
	}

	if task.CreatedBy != nil {
		item.CreatedBy = toUserSummary(*task.CreatedBy)
	}
	if task.AssignedTo != nil {
		item.AssignedTo = toUserSummary(*task.AssignedTo)
	}

	return item
}

func toUserSummary(summary domain.UserSummary) *dto.UserSummary {
	return &dto.UserSummary{
		ID:    summary.ID.Hex(),
		Name:  summary.Name,
		Email: summary.Email,
	}
}
