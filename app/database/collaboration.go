package database

import (
	"github.com/darshilDishu/academiq/app/models"
)

func CreateCollaborationMessage(db DBTX, message *models.CollaborationMessage) error {
	query := `INSERT INTO collaboration (student_id, content)
			  VALUES ($1, $2) RETURNING id, created_at`

	return db.QueryRow(query, message.StudentID, message.Content).
		Scan(&message.ID, &message.CreatedAt)
}

// GetAllCollaborationMessages returns every message joined with its author's
// name, newest first.
func GetAllCollaborationMessages(db DBTX) ([]*models.CollaborationMessage, error) {
	query := `SELECT c.id, c.student_id, c.content, c.created_at, s.name
			  FROM collaboration c
			  JOIN students s ON c.student_id = s.id
			  ORDER BY c.created_at DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*models.CollaborationMessage
	for rows.Next() {
		var message models.CollaborationMessage
		if err := rows.Scan(&message.ID, &message.StudentID, &message.Content,
			&message.CreatedAt, &message.AuthorName); err != nil {
			return nil, err
		}
		messages = append(messages, &message)
	}
	return messages, rows.Err()
}
