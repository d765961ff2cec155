package controller_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"helix_backend/internals/constants"
	reviewRoute "helix_backend/internals/features/content/reviews/route"
	teamModel "helix_backend/internals/features/team/model"
	"helix_backend/internals/middlewares/auth"

	"github.com/DATA-DOG/go-sqlmock"
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

func newReviewApp(t *testing.T, db *gorm.DB, perms teamModel.PermissionSet) *fiber.App {
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
	reviewRoute.ReviewAdminRoutes(admin, db)
	return app
}

// A caller holding only manage_projects must not be able to touch reviews,
// and the refusal must happen before any store call.
func TestReviewDeleteDeniedForProjectsOnlyCaller(t *testing.T) {
	db, mock := newMockDB(t)
	app := newReviewApp(t, db, teamModel.PermissionSet{ManageProjects: true})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/a/reviews/"+uuid.NewString(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteReview(t *testing.T) {
	db, mock := newMockDB(t)
	app := newReviewApp(t, db, teamModel.PermissionSet{ManageReviews: true})

	id := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM "reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "rating", "text", "date", "created_at"}).
			AddRow(id.String(), "Saoirse", 5, "Flawless cerakote work", "2026-07-14", time.Now()))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "reviews"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/a/reviews/"+id.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveReviewRejectsOutOfRangeRating(t *testing.T) {
	db, mock := newMockDB(t)
	app := newReviewApp(t, db, teamModel.PermissionSet{ManageReviews: true})

	body := `{"id":"new_1","name":"Saoirse","rating":6,"text":"Great","date":"2026-07-14"}`
	req := httptest.NewRequest("POST", "/api/a/reviews/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The public list goes quiet when the visibility toggle is off, and the store
// is never asked for the reviews themselves.
func TestPublicReviewsHiddenWhenToggledOff(t *testing.T) {
	db, mock := newMockDB(t)
	app := fiber.New()
	public := app.Group("/api/public")
	reviewRoute.ReviewPublicRoutes(public, db)

	mock.ExpectQuery(`SELECT (.+) FROM "contact_info"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "show_reviews", "created_at", "updated_at"}).
			AddRow(uuid.NewString(), false, time.Now(), time.Now()))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/public/reviews", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Review visibility lives on the singleton config row; the settings endpoint
// writes that one column and nothing else.
func TestSaveReviewSettings(t *testing.T) {
	db, mock := newMockDB(t)
	app := newReviewApp(t, db, teamModel.PermissionSet{ManageReviews: true})

	id := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM "contact_info"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "show_reviews", "created_at", "updated_at"}).
			AddRow(id.String(), true, time.Now(), time.Now()))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "contact_info" SET "show_reviews"=\$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	body := `{"show_reviews":false}`
	req := httptest.NewRequest("PUT", "/api/a/reviews/settings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
