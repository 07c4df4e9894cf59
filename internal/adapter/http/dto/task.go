package dto

type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type TaskItem struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  *string      `json:"description"`
	Status       string       `json:"status"`
	Priority     string       `json:"priority"`
	DueDate      *string      `json:"dueDate"`
	CreatedByID  string       `json:"createdById"`
	AssignedToID *string      `json:"assignedToId"`
	CreatedAt    string       `json:"createdAt"`
	UpdatedAt    string       `json:"updatedAt"`
	CreatedBy    *UserSummary `json:"createdBy"`
	AssignedTo   *UserSummary `json:"assignedTo"`
}

type CreateTaskRequest struct {
	Title        string  `json:"title" binding:"required,max=255"`
	Description  *string `json:"description" binding:"omitempty,max=65535"`
	Status       *string `json:"status" binding:"omitempty,oneof=TODO IN_PROGRESS REVIEW COMPLETED"`
	Priority     *string `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	DueDate      *string `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	AssignedToID *string `json:"assignedToId"`
}

// UpdateTaskRequest carries the full replacement state. Nothing is
// required: a field left out of the payload is cleared on the task,
// not preserved.
type UpdateTaskRequest struct {
	Title        *string `json:"title" binding:"omitempty,max=255"`
	Description  *string `json:"description" binding:"omitempty,max=65535"`
	Status       *string `json:"status" binding:"omitempty,oneof=TODO IN_PROGRESS REVIEW COMPLETED"`
	Priority     *string `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	DueDate      *string `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	AssignedToID *string `json:"assignedToId"`
}

type ListTasksQuery struct {
	Status     string `form:"status"`
	Priority   string `form:"priority"`
	AssignedTo string `form:"assignedTo" binding:"omitempty,oneof=me created"`
	Search     string `form:"search"`
}
