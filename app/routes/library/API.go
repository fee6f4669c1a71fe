package library

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

func renderLibrary(c *fiber.Ctx, books []*models.LibraryEntry) error {
	return c.Render("library", fiber.Map{
		"Title":       "Library - AcademiQ",
		"CurrentPage": "library",
		"books":       books,
	})
}

// GetLibraryPage lists the entries created by the logged-in student.
func GetLibraryPage(c *fiber.Ctx) error {
	books, err := database.GetLibraryByStudent(config.GetDB(), auth.CurrentStudentID(c))
	if err != nil {
		return err
	}
	return renderLibrary(c, books)
}

// AddBookAPI inserts a new entry as available and re-lists. The insert and
// the follow-up read share one transaction.
func AddBookAPI(c *fiber.Ctx) error {
	type BookRequest struct {
		BookName string `form:"book_name"`
		Author   string `form:"author"`
		Subject  string `form:"subject"`
	}

	studentID := auth.CurrentStudentID(c)
	db := config.GetDB()

	var req BookRequest
	if err := c.BodyParser(&req); err != nil {
		return GetLibraryPage(c)
	}

	entry := &models.LibraryEntry{
		StudentID: studentID,
		BookName:  strings.TrimSpace(req.BookName),
		Author:    strings.TrimSpace(req.Author),
		Subject:   strings.TrimSpace(req.Subject),
		Status:    models.BookAvailable,
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}

	if err := database.CreateLibraryEntry(tx, entry); err != nil {
		tx.Rollback()
		log.Printf("library insert failed for student %d: %v", studentID, err)
		return GetLibraryPage(c)
	}

	books, err := database.GetLibraryByStudent(tx, studentID)
	if err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	return renderLibrary(c, books)
}

// BorrowBookAPI flips an entry to borrowed by id, unconditionally.
func BorrowBookAPI(c *fiber.Ctx) error {
	return setStatus(c, models.BookBorrowed)
}

// ReturnBookAPI flips an entry back to available by id, unconditionally.
func ReturnBookAPI(c *fiber.Ctx) error {
	return setStatus(c, models.BookAvailable)
}

func setStatus(c *fiber.Ctx, status models.BookStatus) error {
	bookID, err := strconv.ParseInt(c.Params("bookId"), 10, 64)
	if err != nil {
		return c.Redirect("/library")
	}

	if err := database.SetLibraryStatus(config.GetDB(), bookID, status); err != nil {
		log.Printf("library entry %d status update failed: %v", bookID, err)
	}

	return c.Redirect("/library")
}
