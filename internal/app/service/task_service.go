package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
)

const (
	newAssignmentContent = "You have been assigned a new task: %s"
	reassignmentContent  = "You have been assigned a task: %s"
)

type TaskService struct {
	tasks         ports.TaskRepository
	users         ports.UserRepository
	notifications ports.NotificationService
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(tasks ports.TaskRepository, users ports.UserRepository, notifications ports.NotificationService) *TaskService {
	return &TaskService{tasks: tasks, users: users, notifications: notifications}
}

func (s *TaskService) List(ctx context.Context, requesterID primitive.ObjectID, filter domain.TaskFilter) ([]domain.Task, error) {
	tasks, err := s.tasks.List(ctx, domain.TaskQuery{RequesterID: requesterID, Filter: filter})
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, tasks)
}

// Get has no visibility restriction beyond authentication: any
// authenticated user may fetch any task by id.
func (s *TaskService) Get(ctx context.Context, taskID primitive.ObjectID) (domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	return s.enrichOne(ctx, task)
}

func (s *TaskService) Create(ctx context.Context, requesterID primitive.ObjectID, input domain.CreateTaskInput) (domain.Task, error) {
	now := time.Now().UTC()
	task := domain.Task{
		Title:        input.Title,
		Description:  input.Description,
		Status:       input.Status,
		Priority:     input.Priority,
		DueDate:      input.DueDate,
		CreatedByID:  requesterID,
		AssignedToID: input.AssignedToID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	id, err := s.tasks.Insert(ctx, task)
	if err != nil {
		return domain.Task{}, err
	}
	task.ID = id

	if input.AssignedToID != nil && *input.AssignedToID != requesterID {
		s.notifyAssignment(ctx, *input.AssignedToID, id, fmt.Sprintf(newAssignmentContent, input.Title))
	}

	return s.enrichOne(ctx, task)
}

func (s *TaskService) Update(ctx context.Context, requesterID, taskID primitive.ObjectID, input domain.UpdateTaskInput) (domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if !task.CanMutate(requesterID) {
		return domain.Task{}, domain.ErrForbidden
	}

	if err := s.tasks.Update(ctx, taskID, input, time.Now().UTC()); err != nil {
		return domain.Task{}, err
	}

	if shouldNotifyAssignment(task, input, requesterID) {
		title := ""
		if input.Title != nil {
			title = *input.Title
		}
		s.notifyAssignment(ctx, *input.AssignedToID, taskID, fmt.Sprintf(reassignmentContent, title))
	}

	updated, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	return s.enrichOne(ctx, updated)
}

func (s *TaskService) Delete(ctx context.Context, requesterID, taskID primitive.ObjectID) error {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	// Assignees may update but never delete.
	if task.CreatedByID != requesterID {
		return domain.ErrForbidden
	}

	// Cascade first: notifications referencing the task go before the
	// task itself, so a crash in between leaves no orphans.
	if err := s.notifications.RemoveForTask(ctx, taskID); err != nil {
		return err
	}
	return s.tasks.Delete(ctx, taskID)
}

// shouldNotifyAssignment applies the trigger rule: the new assignee is
// non-null, differs from the previous assignee and is not the
// requester acting on their own behalf.
func shouldNotifyAssignment(previous domain.Task, input domain.UpdateTaskInput, requesterID primitive.ObjectID) bool {
	if input.AssignedToID == nil || *input.AssignedToID == requesterID {
		return false
	}
	return previous.AssignedToID == nil || *previous.AssignedToID != *input.AssignedToID
}

// notifyAssignment is best-effort relative to the task write. The task
// mutation already committed and is not rolled back when the
// notification insert fails.
func (s *TaskService) notifyAssignment(ctx context.Context, recipientID, taskID primitive.ObjectID, content string) {
	if err := s.notifications.EmitTaskAssigned(ctx, recipientID, taskID, content); err != nil {
		zap.L().Warn("failed to emit assignment notification",
			zap.String("task_id", taskID.Hex()),
			zap.String("recipient_id", recipientID.Hex()),
			zap.Error(err))
	}
}

func (s *TaskService) enrichOne(ctx context.Context, task domain.Task) (domain.Task, error) {
	enriched, err := s.enrich(ctx, []domain.Task{task})
	if err != nil {
		return domain.Task{}, err
	}
	return enriched[0], nil
}

// enrich resolves creator and assignee summaries through one batched
// directory lookup, never one query per task.
func (s *TaskService) enrich(ctx context.Context, tasks []domain.Task) ([]domain.Task, error) {
	seen := make(map[primitive.ObjectID]struct{})
	ids := make([]primitive.ObjectID, 0, len(tasks)*2)
	collect := func(id primitive.ObjectID) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	for _, task := range tasks {
		collect(task.CreatedByID)
		if task.AssignedToID != nil {
			collect(*task.AssignedToID)
		}
	}
	if len(ids) == 0 {
		return tasks, nil
	}

	summaries, err := s.users.FindSummaries(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range tasks {
		if summary, ok := summaries[tasks[i].CreatedByID]; ok {
			value := summary
			tasks[i].CreatedBy = &value
		}
		if tasks[i].AssignedToID != nil {
			if summary, ok := summaries[*tasks[i].AssignedToID]; ok {
				value := summary
				tasks[i].AssignedTo = &value
			}
		}
	}
	return tasks, nil
}
