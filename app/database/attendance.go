package database

import (
	"github.com/darshilDishu/academiq/app/models"
)

func CreateAttendanceRecord(db DBTX, record *models.AttendanceRecord) error {
	query := `INSERT INTO attendance (student_id, subject, total_lectures, attended_lectures)
			  VALUES ($1, $2, $3, $4) RETURNING id`

	return db.QueryRow(query,
		record.StudentID, record.Subject, record.TotalLectures, record.AttendedLectures,
	).Scan(&record.ID)
}

func GetAttendanceByStudent(db DBTX, studentID int64) ([]*models.AttendanceRecord, error) {
	query := `SELECT id, student_id, subject, total_lectures, attended_lectures
			  FROM attendance WHERE student_id = $1 ORDER BY id`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.AttendanceRecord
	for rows.Next() {
		var record models.AttendanceRecord
		if err := rows.Scan(&record.ID, &record.StudentID, &record.Subject,
			&record.TotalLectures, &record.AttendedLectures); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}
	return records, rows.Err()
}
