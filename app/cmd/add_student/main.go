package main

import (
	"fmt"

	"github.com/darshilDishu/academiq/app/config"
	"github.com/darshilDishu/academiq/app/database"
	"github.com/darshilDishu/academiq/app/models"
	"github.com/darshilDishu/academiq/app/routes/auth"
)

// Seeds a demo student account for local development.
func main() {
	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		return
	}

	hashed, err := auth.HashPassword("changeme")
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		return
	}

	student := &models.Student{
		Name:     "Demo Student",
		RollNo:   "CS-001",
		Semester: "1",
		Course:   "Computer Science",
		Email:    "demo@academiq.local",
		Password: hashed,
	}

	if err := database.CreateStudent(db, student); err != nil {
		fmt.Printf("Error creating student: %v\n", err)
		return
	}

	fmt.Printf("Student created successfully: %s (%s)\n", student.Name, student.Email)
}
