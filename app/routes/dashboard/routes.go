package dashboard

import (
	"github.com/darshilDishu/academiq/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/dashboard", auth.RequireStudent, GetDashboard)
	app.Post("/attendance", auth.RequireStudent, AddAttendanceAPI)
	app.Post("/add_task", auth.RequireStudent, AddTaskAPI)
	app.Get("/complete_task/:taskId", auth.RequireStudent, CompleteTaskAPI)
}
