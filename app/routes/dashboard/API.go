package dashboard

import (
	"log"
	"strconv"
	"strings"

	"github.com/darshilDishu/academiq/app/config"
	"github.com/darshilDishu/academiq/app/database"
	"github.com/darshilDishu/academiq/app/models"
	"github.com/darshilDishu/academiq/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// GetDashboard renders the aggregated view for the logged-in student: the
// student row plus their full attendance and task history.
func GetDashboard(c *fiber.Ctx) error {
	studentID := auth.CurrentStudentID(c)
	db := config.GetDB()

	student, err := database.GetStudentByID(db, studentID)
	if err != nil {
		return err
	}

	attendance, err := database.GetAttendanceByStudent(db, studentID)
	if err != nil {
		return err
	}

	tasks, err := database.GetTasksByStudent(db, studentID)
	if err != nil {
		return err
	}

	return c.Render("dashboard", fiber.Map{
		"Title":       "Dashboard - AcademiQ",
		"CurrentPage": "dashboard",
		"student":     student,
		"attendance":  attendance,
		"tasks":       tasks,
	})
}

// AddAttendanceAPI records one attendance row. Unparseable numbers drop the
// submission silently; the user lands back on an unchanged dashboard.
func AddAttendanceAPI(c *fiber.Ctx) error {
	type AttendanceRequest struct {
		Subject  string `form:"subject"`
		Total    string `form:"total"`
		Attended string `form:"attended"`
	}

	var req AttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Redirect("/dashboard")
	}

	total, err := strconv.Atoi(req.Total)
	if err != nil {
		return c.Redirect("/dashboard")
	}
	attended, err := strconv.Atoi(req.Attended)
	if err != nil {
		return c.Redirect("/dashboard")
	}

	record := &models.AttendanceRecord{
		StudentID:        auth.CurrentStudentID(c),
		Subject:          strings.TrimSpace(req.Subject),
		TotalLectures:    total,
		AttendedLectures: attended,
	}

	if err := database.CreateAttendanceRecord(config.GetDB(), record); err != nil {
		log.Printf("attendance insert failed for student %d: %v", record.StudentID, err)
	}

	return c.Redirect("/dashboard")
}

func AddTaskAPI(c *fiber.Ctx) error {
	taskName := strings.TrimSpace(c.FormValue("task_name"))
	if taskName == "" {
		return c.Redirect("/dashboard")
	}

	task := &models.Task{
		StudentID: auth.CurrentStudentID(c),
		TaskName:  taskName,
		Status:    models.TaskPending,
	}

	if err := database.CreateTask(config.GetDB(), task); err != nil {
		log.Printf("task insert failed for student %d: %v", task.StudentID, err)
	}

	return c.Redirect("/dashboard")
}

// CompleteTaskAPI marks a task done by id. There is deliberately no check
// that the task belongs to the acting student.
func CompleteTaskAPI(c *fiber.Ctx) error {
	taskID, err := strconv.ParseInt(c.Params("taskId"), 10, 64)
	if err != nil {
		return c.Redirect("/dashboard")
	}

	if err := database.CompleteTask(config.GetDB(), taskID); err != nil {
		log.Printf("task %d completion failed: %v", taskID, err)
	}

	return c.Redirect("/dashboard")
}
