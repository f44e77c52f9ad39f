package auth

import (
	"context"
	"strings"
	"testing"

	"studio-backend/database"
	"studio-backend/internal/domain/users"
	"studio-backend/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	// One connection, or each pooled connection gets its own empty database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	return db
}

func str(s string) *string { return &s }

func seedClient(t *testing.T, db *gorm.DB, email, code string) *users.User {
	t.Helper()
	client := users.User{
		OpenID:      "temp_" + email,
		Name:        str("Test Client"),
		Email:       &email,
		Role:        users.RoleClient,
		LinkingCode: &code,
	}
	require.NoError(t, db.Create(&client).Error)
	return &client
}

func TestLoginWithCodeCaseInsensitive(t *testing.T) {
	db := testDB(t)
	session.Use(session.NewMemoryStore())
	seedClient(t, db, "A@B.com", "XYZ123")

	sessionID, user, err := LoginWithCode(context.Background(), db, "a@b.com", "xyz123")
	require.NoError(t, err)
	assert.NotEmpty(t, sessionID)
	assert.True(t, user.IsLinked)
	assert.NotNil(t, user.LinkedAt)

	// The code is not consumed on the login path.
	var reloaded users.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	require.NotNil(t, reloaded.LinkingCode)
	assert.Equal(t, "XYZ123", *reloaded.LinkingCode)

	userID, ok := session.Resolve(context.Background(), sessionID)
	assert.True(t, ok)
	assert.Equal(t, user.ID, userID)
}

func TestLoginWithCodeWrongCode(t *testing.T) {
	db := testDB(t)
	session.Use(session.NewMemoryStore())
	seedClient(t, db, "a@b.com", "XYZ123")

	_, _, err := LoginWithCode(context.Background(), db, "a@b.com", "WRONG1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = LoginWithCode(context.Background(), db, "other@b.com", "XYZ123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginAsAdmin(t *testing.T) {
	db := testDB(t)
	session.Use(session.NewMemoryStore())
	require.NoError(t, EnsureAdminExists(db))

	sessionID, admin, err := LoginAsAdmin(context.Background(), db, DefaultAdminEmail)
	require.NoError(t, err)
	assert.NotEmpty(t, sessionID)
	assert.Equal(t, users.RoleAdmin, admin.Role)

	_, _, err = LoginAsAdmin(context.Background(), db, "nobody@example.com")
	assert.ErrorIs(t, err, ErrAdminNotFound)
}

func TestLinkAccountConsumesCodeOnce(t *testing.T) {
	db := testDB(t)
	client := seedClient(t, db, "a@b.com", "ABC234")

	caller := users.User{OpenID: "google_123", Email: str("a@b.com"), Role: users.RoleUser}
	require.NoError(t, db.Create(&caller).Error)

	require.NoError(t, LinkAccount(db, &caller, "ABC234"))

	var linked users.User
	require.NoError(t, db.First(&linked, client.ID).Error)
	assert.Equal(t, "google_123", linked.OpenID)
	assert.True(t, linked.IsLinked)
	assert.NotNil(t, linked.LinkedAt)
	assert.Nil(t, linked.LinkingCode, "code must be cleared after use")

	// Second attempt with the same code fails: the code no longer exists.
	assert.ErrorIs(t, LinkAccount(db, &caller, "ABC234"), ErrCodeNotFound)
}

func TestLinkAccountAlreadyUsed(t *testing.T) {
	db := testDB(t)
	client := seedClient(t, db, "a@b.com", "ABC234")
	require.NoError(t, db.Model(client).Update("is_linked", true).Error)

	caller := users.User{OpenID: "google_123", Email: str("a@b.com"), Role: users.RoleUser}
	require.NoError(t, db.Create(&caller).Error)

	assert.ErrorIs(t, LinkAccount(db, &caller, "ABC234"), ErrCodeAlreadyUsed)
}

func TestLinkAccountEmailMismatch(t *testing.T) {
	db := testDB(t)
	seedClient(t, db, "client@b.com", "ABC234")

	caller := users.User{OpenID: "google_123", Email: str("someone-else@b.com"), Role: users.RoleUser}
	require.NoError(t, db.Create(&caller).Error)

	assert.ErrorIs(t, LinkAccount(db, &caller, "ABC234"), ErrEmailMismatch)
}

func TestEnsureAdminExistsIdempotent(t *testing.T) {
	db := testDB(t)

	require.NoError(t, EnsureAdminExists(db))
	require.NoError(t, EnsureAdminExists(db))

	var count int64
	require.NoError(t, db.Model(&users.User{}).Where("role = ?", users.RoleAdmin).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestNewLinkingCode(t *testing.T) {
	code := NewLinkingCode()
	assert.Len(t, code, 6)
	assert.Equal(t, strings.ToUpper(code), code)
	assert.NotEqual(t, code, NewLinkingCode())
}
