package controller_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"helix_backend/internals/constants"
	teamModel "helix_backend/internals/features/team/model"
	teamRoute "helix_backend/internals/features/team/route"
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

func newTeamApp(t *testing.T, db *gorm.DB, perms teamModel.PermissionSet) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(auth.LocUserRole, &teamModel.UserRoleModel{
			Role:        constants.RoleAdmin,
			Permissions: perms,
		})
		return c.Next()
	})
	admin := app.Group("/api/a")
	teamRoute.TeamAdminRoutes(admin, db)
	return app
}

func userRoleRows(userID uuid.UUID, role string, permsJSON string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"user_id", "email", "role", "permissions", "created_at"}).
		AddRow(userID.String(), "member@helixmotorcycles.com", role, []byte(permsJSON), time.Now())
}

func TestCreateTeamMemberDefaults(t *testing.T) {
	db, mock := newMockDB(t)
	app := newTeamApp(t, db, teamModel.PermissionSet{ManageTeam: true})

	userID := uuid.New()
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(userID.String()))
	mock.ExpectQuery(`INSERT INTO "user_roles"`).
		WillReturnRows(sqlmock.NewRows([]string{"permissions"}).
			AddRow([]byte(`{"manage_projects":true}`)))
	mock.ExpectCommit()

	body := `{"email":"alec@example.com","password":"supersecret"}`
	req := httptest.NewRequest("POST", "/api/a/team/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var parsed struct {
		Data struct {
			Role        string                   `json:"role"`
			Permissions teamModel.PermissionSet  `json:"permissions"`
		} `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(raw, &parsed))

	assert.Equal(t, constants.RoleEditor, parsed.Data.Role)
	assert.True(t, parsed.Data.Permissions.Allows(constants.PermManageProjects))
	for _, cap := range constants.AllCapabilities {
		if cap == constants.PermManageProjects {
			continue
		}
		assert.False(t, parsed.Data.Permissions.Allows(cap), "new member must not hold %s", cap)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTeamMemberDeniedWithoutManageTeam(t *testing.T) {
	db, mock := newMockDB(t)
	app := newTeamApp(t, db, teamModel.PermissionSet{ManageProjects: true})

	body := `{"email":"alec@example.com","password":"supersecret"}`
	req := httptest.NewRequest("POST", "/api/a/team/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// The gate fires before the handler, so the store is never touched.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUserRole(t *testing.T) {
	db, mock := newMockDB(t)
	app := newTeamApp(t, db, teamModel.PermissionSet{ManageTeam: true})

	userID := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM "user_roles"`).
		WillReturnRows(userRoleRows(userID, constants.RoleEditor, `{"manage_projects":true}`))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "user_roles"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/a/team/"+userID.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUserRoleRefusesSuperAdmin(t *testing.T) {
	db, mock := newMockDB(t)
	app := newTeamApp(t, db, teamModel.PermissionSet{ManageTeam: true})

	userID := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM "user_roles"`).
		WillReturnRows(userRoleRows(userID, constants.RoleSuperAdmin, `{"manage_team":true}`))

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/a/team/"+userID.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var parsed map[string]interface{}
	require.NoError(t, sonic.Unmarshal(raw, &parsed))
	assert.Equal(t, constants.ErrSuperAdminProtected, parsed["message"])

	// Refusal happens before any delete reaches the store.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUserRole(t *testing.T) {
	db, mock := newMockDB(t)
	app := newTeamApp(t, db, teamModel.PermissionSet{ManageTeam: true})

	userID := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM "user_roles"`).
		WillReturnRows(userRoleRows(userID, constants.RoleEditor, `{"manage_projects":true}`))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "user_roles" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	body := `{"role":"admin","permissions":{"manage_projects":true,"manage_reviews":true}}`
	req := httptest.NewRequest("PUT", "/api/a/team/"+userID.String(), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
