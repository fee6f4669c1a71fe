package collab

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/darshilDishu/academiq/app/config"
	"github.com/darshilDishu/academiq/app/routes/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var collabColumns = []string{"id", "student_id", "content", "created_at", "name"}

func newTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	config.AppConfig = &config.Config{DB: db, SessionSecret: "test-secret"}
	t.Cleanup(func() { config.AppConfig = nil })

	engine := html.New("../../templates", ".html")
	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
	})
	SetupCollabRoutes(app)
	return app, mock
}

func authedRequest(t *testing.T, method, path string, form url.Values) *http.Request {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	token, err := auth.GenerateSessionToken(1)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: token})
	return req
}

func TestGetCollabPage_ShowsAllStudentsNewestFirst(t *testing.T) {
	app, mock := newTestApp(t)

	later := time.Now()
	rows := sqlmock.NewRows(collabColumns).
		AddRow(2, 2, "me too", later, "Ben").
		AddRow(1, 1, "study group tonight?", later.Add(-time.Hour), "Ana")
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY c.created_at DESC`)).
		WillReturnRows(rows)

	resp, err := app.Test(authedRequest(t, http.MethodGet, "/collab", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	page := string(b)
	assert.Contains(t, page, "Ben")
	assert.Contains(t, page, "Ana")
	assert.Less(t, strings.Index(page, "me too"), strings.Index(page, "study group tonight?"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostMessage(t *testing.T) {
	app, mock := newTestApp(t)

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO collaboration`)).
		WithArgs(int64(1), "hello everyone").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, now))
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY c.created_at DESC`)).
		WillReturnRows(sqlmock.NewRows(collabColumns).
			AddRow(1, 1, "hello everyone", now, "Ana"))
	mock.ExpectCommit()

	resp, err := app.Test(authedRequest(t, http.MethodPost, "/collab", url.Values{
		"message": {"  hello everyone  "},
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(b), "hello everyone")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostMessage_EmptyContentStillInserts(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO collaboration`)).
		WithArgs(int64(1), "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY c.created_at DESC`)).
		WillReturnRows(sqlmock.NewRows(collabColumns))
	mock.ExpectCommit()

	resp, err := app.Test(authedRequest(t, http.MethodPost, "/collab", url.Values{
		"message": {"   "},
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostMessage_InsertFailureIsSwallowed(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO collaboration`)).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY c.created_at DESC`)).
		WillReturnRows(sqlmock.NewRows(collabColumns))

	resp, err := app.Test(authedRequest(t, http.MethodPost, "/collab", url.Values{
		"message": {"hello"},
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollab_Unauthenticated(t *testing.T) {
	app, mock := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/collab", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
