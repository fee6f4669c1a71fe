package database

import (
	"github.com/darshilDishu/academiq/app/models"
)

func CreateLibraryEntry(db DBTX, entry *models.LibraryEntry) error {
	if entry.Status == "" {
		entry.Status = models.BookAvailable
	}
	query := `INSERT INTO library (student_id, book_name, author, subject, status)
			  VALUES ($1, $2, $3, $4, $5) RETURNING id`

	return db.QueryRow(query,
		entry.StudentID, entry.BookName, entry.Author, entry.Subject, entry.Status,
	).Scan(&entry.ID)
}

func GetLibraryByStudent(db DBTX, studentID int64) ([]*models.LibraryEntry, error) {
	query := `SELECT id, student_id, book_name, author, subject, status
			  FROM library WHERE student_id = $1 ORDER BY id`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.LibraryEntry
	for rows.Next() {
		var entry models.LibraryEntry
		if err := rows.Scan(&entry.ID, &entry.StudentID, &entry.BookName,
			&entry.Author, &entry.Subject, &entry.Status); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}
	return entries, rows.Err()
}

// SetLibraryStatus flips an entry's status by id alone. There is no check of
// the entry's owner or current status; the update is unconditional.
func SetLibraryStatus(db DBTX, entryID int64, status models.BookStatus) error {
	query := `UPDATE library SET status = $1 WHERE id = $2`
	_, err := db.Exec(query, status, entryID)
	return err
}
