package library

import (
	"github.com/darshilDishu/academiq/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupLibraryRoutes(app *fiber.App) {
	app.Get("/library", auth.RequireStudent, GetLibraryPage)
	app.Post("/library", auth.RequireStudent, AddBookAPI)
	app.Get("/borrow/:bookId", auth.RequireStudent, BorrowBookAPI)
	app.Get("/return/:bookId", auth.RequireStudent, ReturnBookAPI)
}
