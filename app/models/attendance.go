package models

type AttendanceRecord struct {
	ID               int64  `json:"id"`
	StudentID        int64  `json:"student_id"`
	Subject          string `json:"subject"`
	TotalLectures    int    `json:"total_lectures"`
	AttendedLectures int    `json:"attended_lectures"`
}
