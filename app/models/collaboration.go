package models

import "time"

// CollaborationMessage is immutable once posted and visible to every
// authenticated student. AuthorName is joined in from students on read.
type CollaborationMessage struct {
	ID         int64     `json:"id"`
	StudentID  int64     `json:"student_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	AuthorName string    `json:"author_name,omitempty"`
}
