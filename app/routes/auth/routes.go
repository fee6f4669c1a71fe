package auth

import (
	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Get("/", ShowLoginPage)
	app.Post("/", LoginAPI)
	app.Get("/register", ShowRegisterPage)
	app.Post("/register", RegisterAPI)
	app.Get("/logout", LogoutAPI)
}

func ShowLoginPage(c *fiber.Ctx) error {
	return renderLogin(c, "")
}

func ShowRegisterPage(c *fiber.Ctx) error {
	return renderRegister(c, "")
}

func renderLogin(c *fiber.Ctx, errMsg string) error {
	return c.Render("login", fiber.Map{
		"Title": "Login - AcademiQ",
		"Error": errMsg,
	}, "")
}

func renderRegister(c *fiber.Ctx, errMsg string) error {
	return c.Render("register", fiber.Map{
		"Title": "Register - AcademiQ",
		"Error": errMsg,
	}, "")
}

// RequireStudent validates the session cookie and sets the authenticated
// student's id in the request context. Anything short of a valid session
// collapses to a redirect to the login page.
func RequireStudent(c *fiber.Ctx) error {
	tokenString := c.Cookies(SessionCookie)
	if tokenString == "" {
		return c.Redirect("/")
	}

	claims, err := ValidateSessionToken(tokenString)
	if err != nil {
		return c.Redirect("/")
	}

	c.Locals("student_id", claims.StudentID)
	return c.Next()
}

// CurrentStudentID returns the id set by RequireStudent.
func CurrentStudentID(c *fiber.Ctx) int64 {
	id, _ := c.Locals("student_id").(int64)
	return id
}
