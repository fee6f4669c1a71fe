package collab

import (
	"github.com/darshilDishu/academiq/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupCollabRoutes(app *fiber.App) {
	app.Get("/collab", auth.RequireStudent, GetCollabPage)
	app.Post("/collab", auth.RequireStudent, PostMessageAPI)
}
