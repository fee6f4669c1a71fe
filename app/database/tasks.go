package database

import (
	"github.com/darshilDishu/academiq/app/models"
)

func CreateTask(db DBTX, task *models.Task) error {
	if task.Status == "" {
		task.Status = models.TaskPending
	}
	query := `INSERT INTO tasks (student_id, task_name, status)
			  VALUES ($1, $2, $3) RETURNING id`

	return db.QueryRow(query, task.StudentID, task.TaskName, task.Status).Scan(&task.ID)
}

func GetTasksByStudent(db DBTX, studentID int64) ([]*models.Task, error) {
	query := `SELECT id, student_id, task_name, status
			  FROM tasks WHERE student_id = $1 ORDER BY id`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(&task.ID, &task.StudentID, &task.TaskName, &task.Status); err != nil {
			return nil, err
		}
		tasks = append(tasks, &task)
	}
	return tasks, rows.Err()
}

// CompleteTask marks a task done by id alone. Re-applying to a done task is
// a data-level no-op; the status never transitions back to pending.
func CompleteTask(db DBTX, taskID int64) error {
	query := `UPDATE tasks SET status = $1 WHERE id = $2`
	_, err := db.Exec(query, models.TaskDone, taskID)
	return err
}
