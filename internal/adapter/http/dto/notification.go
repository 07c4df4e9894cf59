package dto

type TaskRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type NotificationItem struct {
	ID        string   `json:"id"`
	Type      string   `json:"type"`
	Content   string   `json:"content"`
	UserID    string   `json:"userId"`
	TaskID    *string  `json:"taskId"`
	Read      bool     `json:"read"`
	CreatedAt string   `json:"createdAt"`
	Task      *TaskRef `json:"task"`
}

type MarkNotificationRequest struct {
	ID   string `json:"id" binding:"required"`
	Read *bool  `json:"read" binding:"required"`
}
