package collab

import (
	"log"
	"strings"

	"github.com/darshilDishu/academiq/app/config"
	"github.com/darshilDishu/academiq/app/database"
	"github.com/darshilDishu/academiq/app/models"
	"github.com/darshilDishu/academiq/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func renderCollab(c *fiber.Ctx, messages []*models.CollaborationMessage) error {
	return c.Render("collab", fiber.Map{
		"Title":       "Collaboration - AcademiQ",
		"CurrentPage": "collab",
		"messages":    messages,
	})
}

// GetCollabPage shows every message from every student, newest first.
func GetCollabPage(c *fiber.Ctx) error {
	messages, err := database.GetAllCollaborationMessages(config.GetDB())
	if err != nil {
		return err
	}
	return renderCollab(c, messages)
}

// PostMessageAPI inserts one message and re-lists the feed in the same
// transaction. Empty content is still insertable.
func PostMessageAPI(c *fiber.Ctx) error {
	message := &models.CollaborationMessage{
		StudentID: auth.CurrentStudentID(c),
		Content:   strings.TrimSpace(c.FormValue("message")),
	}

	tx, err := config.GetDB().Begin()
	if err != nil {
		return err
	}

	if err := database.CreateCollaborationMessage(tx, message); err != nil {
		tx.Rollback()
		log.Printf("collab insert failed for student %d: %v", message.StudentID, err)
		return GetCollabPage(c)
	}

	messages, err := database.GetAllCollaborationMessages(tx)
	if err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	return renderCollab(c, messages)
}
