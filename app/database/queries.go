package database

import (
	"github.com/darshilDishu/academiq/app/models"
)

func GetStudentByEmail(db DBTX, email string) (*models.Student, error) {
	student := &models.Student{}
	query := `SELECT id, name, roll_no, semester, course, email, password
			  FROM students WHERE email = $1`

	err := db.QueryRow(query, email).Scan(
		&student.ID, &student.Name, &student.RollNo, &student.Semester,
		&student.Course, &student.Email, &student.Password,
	)

	if err != nil {
		return nil, err
	}
	return student, nil
}

func GetStudentByID(db DBTX, studentID int64) (*models.Student, error) {
	student := &models.Student{}
	query := `SELECT id, name, roll_no, semester, course, email, password
			  FROM students WHERE id = $1`

	err := db.QueryRow(query, studentID).Scan(
		&student.ID, &student.Name, &student.RollNo, &student.Semester,
		&student.Course, &student.Email, &student.Password,
	)

	if err != nil {
		return nil, err
	}
	return student, nil
}

// CreateStudent inserts a new student row. Password must already be hashed.
func CreateStudent(db DBTX, student *models.Student) error {
	query := `INSERT INTO students (name, roll_no, semester, course, email, password)
			  VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	return db.QueryRow(query,
		student.Name, student.RollNo, student.Semester,
		student.Course, student.Email, student.Password,
	).Scan(&student.ID)
}
