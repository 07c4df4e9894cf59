package validation

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskhub/internal/adapter/http/dto"
	"taskhub/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

const dueDateLayout = "2006-01-02"

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	status := domain.TaskStatusTodo
	if req.Status != nil {
		status = domain.TaskStatus(*req.Status)
	}

	priority := domain.TaskPriorityMedium
	if req.Priority != nil {
		priority = domain.TaskPriority(*req.Priority)
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	assignee, err := parseObjectID(req.AssignedToID)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	return domain.CreateTaskInput{
		Title:        title,
		Description:  req.Description,
		Status:       status,
		Priority:     priority,
		DueDate:      dueDate,
		AssignedToID: assignee,
	}, nil
}

// BuildUpdateTaskInput keeps the overwrite contract: fields absent
// from the request stay nil and are persisted as null. Only values
// that are present get validated.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest) (domain.UpdateTaskInput, error) {
	var title *string
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		title = &value
	}

	var status *domain.TaskStatus
	if req.Status != nil {
		value := domain.TaskStatus(*req.Status)
		status = &value
	}

	var priority *domain.TaskPriority
	if req.Priority != nil {
		value := domain.TaskPriority(*req.Priority)
		priority = &value
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	assignee, err := parseObjectID(req.AssignedToID)
	if err != nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	return domain.UpdateTaskInput{
		Title:        title,
		Description:  req.Description,
		Status:       status,
		Priority:     priority,
		DueDate:      dueDate,
		AssignedToID: assignee,
	}, nil
}

func parseDueDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dueDateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func parseObjectID(value *string) (*primitive.ObjectID, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	id, err := primitive.ObjectIDFromHex(*value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
