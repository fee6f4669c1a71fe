package database

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/darshilDishu/academiq/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAttendanceRecord(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO attendance (student_id, subject, total_lectures, attended_lectures)`)).
		WithArgs(int64(1), "Maths", 40, 32).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	record := &models.AttendanceRecord{StudentID: 1, Subject: "Maths", TotalLectures: 40, AttendedLectures: 32}
	require.NoError(t, CreateAttendanceRecord(db, record))
	assert.Equal(t, int64(5), record.ID)
}

func TestCreateAttendanceRecord_NoBoundsCheck(t *testing.T) {
	db, mock := newMock(t)

	// Attended above total and negative totals pass straight through.
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO attendance`)).
		WithArgs(int64(1), "Physics", -3, 50).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(6))

	record := &models.AttendanceRecord{StudentID: 1, Subject: "Physics", TotalLectures: -3, AttendedLectures: 50}
	require.NoError(t, CreateAttendanceRecord(db, record))
}

func TestGetAttendanceByStudent(t *testing.T) {
	db, mock := newMock(t)

	rows := sqlmock.NewRows([]string{"id", "student_id", "subject", "total_lectures", "attended_lectures"}).
		AddRow(1, 1, "Maths", 40, 32).
		AddRow(2, 1, "Physics", 30, 30)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM attendance WHERE student_id = $1`)).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	records, err := GetAttendanceByStudent(db, 1)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Maths", records[0].Subject)
	assert.Equal(t, 30, records[1].AttendedLectures)
}

func TestGetAttendanceByStudent_Empty(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM attendance WHERE student_id = $1`)).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "student_id", "subject", "total_lectures", "attended_lectures"}))

	records, err := GetAttendanceByStudent(db, 9)
	require.NoError(t, err)
	assert.Empty(t, records)
}
