package models

type Student struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	RollNo   string `json:"roll_no"`
	Semester string `json:"semester"`
	Course   string `json:"course"`
	Email    string `json:"email"`
	Password string `json:"-"` // bcrypt hash, never serialized
}
