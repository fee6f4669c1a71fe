package main

import (
	"log"

	"github.com/darshilDishu/academiq/app/config"
	"github.com/darshilDishu/academiq/app/database"
	"github.com/darshilDishu/academiq/app/routes/auth"
	"github.com/darshilDishu/academiq/app/routes/collab"
	"github.com/darshilDishu/academiq/app/routes/dashboard"
	"github.com/darshilDishu/academiq/app/routes/library"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
)

// customErrorHandler renders HTTP errors with the portal's templates.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if code == 404 {
		return c.Status(404).Render("404", fiber.Map{
			"Title":       "Page Not Found - AcademiQ",
			"CurrentPage": "",
		})
	}

	return c.Status(code).Render("error", fiber.Map{
		"Title":        "Error - AcademiQ",
		"CurrentPage":  "",
		"ErrorCode":    code,
		"ErrorTitle":   "An Error Occurred",
		"ErrorMessage": err.Error(),
	})
}

// buildApp wires the template engine, middleware and routes. Database access
// happens per request through config.GetDB, so the app can be built before
// or after InitDB.
func buildApp() *fiber.App {
	// Initialize template engine
	engine := html.New("./app/templates", ".html")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Static files
	app.Static("/static", "./static")

	// Liveness probe
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	// Routes
	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	library.SetupLibraryRoutes(app)
	collab.SetupCollabRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	return app
}

func main() {
	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	if err := database.EnsureSchema(config.GetDB()); err != nil {
		log.Fatal("Failed to ensure database schema:", err)
	}

	app := buildApp()

	// Start server
	addr := ":" + config.GetPort()
	log.Println("Server starting on", addr)
	log.Fatal(app.Listen(addr))
}
