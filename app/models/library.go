package models

type BookStatus string

const (
	BookAvailable BookStatus = "available"
	BookBorrowed  BookStatus = "borrowed"
)

// LibraryEntry is a book tracked by the student who added it. StudentID is
// the entry's creator, not necessarily its current holder.
type LibraryEntry struct {
	ID        int64      `json:"id"`
	StudentID int64      `json:"student_id"`
	BookName  string     `json:"book_name"`
	Author    string     `json:"author"`
	Subject   string     `json:"subject"`
	Status    BookStatus `json:"status"`
}
