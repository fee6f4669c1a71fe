package auth

import (
	"database/sql"
	"strings"
	"time"

	"github.com/darshilDishu/academiq/app/config"
	"github.com/darshilDishu/academiq/app/database"
	"github.com/darshilDishu/academiq/app/models"
	"github.com/gofiber/fiber/v2"
)

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `form:"email"`
		Password string `form:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return renderLogin(c, "Invalid credentials")
	}
	req.Email = strings.TrimSpace(req.Email)

	student, err := database.GetStudentByEmail(config.GetDB(), req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return renderLogin(c, "Invalid credentials")
		}
		return err
	}

	// No stored hash collapses to the same generic failure as a mismatch.
	if student.Password == "" || !CheckPasswordHash(req.Password, student.Password) {
		return renderLogin(c, "Invalid credentials")
	}

	token, err := GenerateSessionToken(student.ID)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Expires:  GetSessionExpiry(),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.Redirect("/dashboard")
}

func RegisterAPI(c *fiber.Ctx) error {
	type RegisterRequest struct {
		Name     string `form:"name"`
		RollNo   string `form:"roll_no"`
		Semester string `form:"semester"`
		Course   string `form:"course"`
		Email    string `form:"email"`
		Password string `form:"password"`
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return renderRegister(c, "Name, email and password required")
	}
	req.Name = strings.TrimSpace(req.Name)
	req.RollNo = strings.TrimSpace(req.RollNo)
	req.Semester = strings.TrimSpace(req.Semester)
	req.Course = strings.TrimSpace(req.Course)
	req.Email = strings.TrimSpace(req.Email)

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return renderRegister(c, "Name, email and password required")
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return err
	}

	student := &models.Student{
		Name:     req.Name,
		RollNo:   req.RollNo,
		Semester: req.Semester,
		Course:   req.Course,
		Email:    req.Email,
		Password: hashed,
	}

	tx, err := config.GetDB().Begin()
	if err != nil {
		return err
	}

	if err := database.CreateStudent(tx, student); err != nil {
		tx.Rollback()
		return renderRegister(c, "Database error: "+err.Error())
	}
	if err := tx.Commit(); err != nil {
		return renderRegister(c, "Database error: "+err.Error())
	}

	// New accounts are not auto-logged-in.
	return c.Redirect("/")
}

func LogoutAPI(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.Redirect("/")
}
