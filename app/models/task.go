package models

type TaskStatus string

const (
	TaskPending TaskStatus = "pending"
	TaskDone    TaskStatus = "done"
)

type Task struct {
	ID        int64      `json:"id"`
	StudentID int64      `json:"student_id"`
	TaskName  string     `json:"task_name"`
	Status    TaskStatus `json:"status"`
}
