package controller_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"helix_backend/internals/constants"
	messageRoute "helix_backend/internals/features/content/messages/route"
	teamModel "helix_backend/internals/features/team/model"
	"helix_backend/internals/middlewares/auth"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func newMessageApp(t *testing.T, db *gorm.DB, perms teamModel.PermissionSet) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(auth.LocUserRole, &teamModel.UserRoleModel{
			Role:        constants.RoleEditor,
			Permissions: perms,
		})
		return c.Next()
	})
	admin := app.Group("/api/a")
	messageRoute.MessageAdminRoutes(admin, db)
	return app
}

func messageRows(ids ...uuid.UUID) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "name", "email", "message", "status", "is_archived", "created_at"})
	for _, id := range ids {
		rows.AddRow(id.String(), "Rider", "rider@example.com", "Do you rebuild CB750 engines?", "unread", false, time.Now())
	}
	return rows
}

func TestGetMessagesPartitionsByArchiveFlag(t *testing.T) {
	db, mock := newMockDB(t)
	app := newMessageApp(t, db, teamModel.PermissionSet{ViewMessages: true})

	mock.ExpectQuery(`SELECT (.+) FROM "messages" WHERE is_archived = \$1`).
		WithArgs(false).
		WillReturnRows(messageRows(uuid.New(), uuid.New()))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/a/messages/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	mock.ExpectQuery(`SELECT (.+) FROM "messages" WHERE is_archived = \$1`).
		WithArgs(true).
		WillReturnRows(messageRows())

	resp, err = app.Test(httptest.NewRequest("GET", "/api/a/messages/?view=archived", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var parsed struct {
		Data []interface{} `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(raw, &parsed))
	assert.Len(t, parsed.Data, 0)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArchiveMessagesBulk(t *testing.T) {
	db, mock := newMockDB(t)
	app := newMessageApp(t, db, teamModel.PermissionSet{ViewMessages: true, ManageMessages: true})

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "messages" SET "is_archived"=\$1 WHERE id IN`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	body := `{"ids":["` + ids[0].String() + `","` + ids[1].String() + `","` + ids[2].String() + `"]}`
	req := httptest.NewRequest("POST", "/api/a/messages/archive", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var parsed struct {
		Data struct {
			Affected int `json:"affected"`
		} `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(raw, &parsed))
	assert.Equal(t, 3, parsed.Data.Affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMessagesBulk(t *testing.T) {
	db, mock := newMockDB(t)
	app := newMessageApp(t, db, teamModel.PermissionSet{ViewMessages: true, ManageMessages: true})

	ids := []uuid.UUID{uuid.New(), uuid.New()}
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "messages" WHERE id IN`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	body := `{"ids":["` + ids[0].String() + `","` + ids[1].String() + `"]}`
	req := httptest.NewRequest("POST", "/api/a/messages/delete", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestViewerCannotMutateMessages(t *testing.T) {
	db, mock := newMockDB(t)
	app := newMessageApp(t, db, teamModel.PermissionSet{ViewMessages: true})

	body := `{"ids":["` + uuid.NewString() + `"]}`
	req := httptest.NewRequest("POST", "/api/a/messages/archive", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessagesHiddenWithoutViewFlag(t *testing.T) {
	db, mock := newMockDB(t)
	app := newMessageApp(t, db, teamModel.PermissionSet{ManageProjects: true})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/a/messages/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitMessageRequiresValidEmail(t *testing.T) {
	db, mock := newMockDB(t)
	app := fiber.New()
	public := app.Group("/api/public")
	messageRoute.MessagePublicRoutes(public, db)

	body := `{"name":"Rider","email":"not-an-email","message":"hello"}`
	req := httptest.NewRequest("POST", "/api/public/messages", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
