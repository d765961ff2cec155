package controller_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"helix_backend/internals/constants"
	siteConfigRoute "helix_backend/internals/features/content/siteconfig/route"
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

func newConfigApp(t *testing.T, db *gorm.DB, perms teamModel.PermissionSet) *fiber.App {
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
	siteConfigRoute.SiteConfigAdminRoutes(admin, db)
	return app
}

func configRows(id uuid.UUID, stockJSON string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "owner", "phone", "cerakote_stock", "created_at", "updated_at"}).
		AddRow(id.String(), "Colm", "+353 86 123 4567", []byte(stockJSON), time.Now(), time.Now())
}

func toggleStock(t *testing.T, app *fiber.App, code string) map[string]interface{} {
	t.Helper()
	body := `{"code":"` + code + `"}`
	req := httptest.NewRequest("POST", "/api/a/site-config/stock/toggle", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var parsed struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(raw, &parsed))
	return parsed.Data
}

func TestToggleStockAbsentCodeGoesOutOfStock(t *testing.T) {
	db, mock := newMockDB(t)
	app := newConfigApp(t, db, teamModel.PermissionSet{ManageContent: true})

	id := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM "contact_info"`).
		WillReturnRows(configRows(id, `{}`))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "contact_info" SET "cerakote_stock"=\$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	data := toggleStock(t, app, "H-146")
	assert.Equal(t, false, data["in_stock"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleStockOutOfStockCodeComesBack(t *testing.T) {
	db, mock := newMockDB(t)
	app := newConfigApp(t, db, teamModel.PermissionSet{ManageContent: true})

	id := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM "contact_info"`).
		WillReturnRows(configRows(id, `{"H-146":false}`))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "contact_info" SET "cerakote_stock"=\$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	data := toggleStock(t, app, "H-146")
	assert.Equal(t, true, data["in_stock"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveContactTouchesOnlyContactColumns(t *testing.T) {
	db, mock := newMockDB(t)
	app := newConfigApp(t, db, teamModel.PermissionSet{ManageContent: true})

	id := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM "contact_info"`).
		WillReturnRows(configRows(id, `{}`))
	mock.ExpectBegin()
	// Map updates are ordered alphabetically; updated_at is appended by the ORM.
	mock.ExpectExec(`UPDATE "contact_info" SET "address"=\$1,"email"=\$2,"hours"=\$3,"offer"=\$4,"owner"=\$5,"phone"=\$6,"updated_at"=\$7 WHERE`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	body := `{"owner":"Colm","phone":"+353 86 123 4567","email":"hello@helixmotorcycles.com","address":"Unit 4","hours":"Mon-Fri 9-6","offer":""}`
	req := httptest.NewRequest("PUT", "/api/a/site-config/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSiteConfigMutationDeniedWithoutManageContent(t *testing.T) {
	db, mock := newMockDB(t)
	app := newConfigApp(t, db, teamModel.PermissionSet{ManageProjects: true, ManageReviews: true})

	body := `{"promotion_enabled":true,"promotion_text":"Winter service special"}`
	req := httptest.NewRequest("PUT", "/api/a/site-config/promotion", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
