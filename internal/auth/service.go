package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"math/big"
	"strings"
	"time"

	"studio-backend/internal/domain/users"
	"studio-backend/internal/session"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultAdminEmail is the bootstrap admin account created on first start.
const DefaultAdminEmail = "admin@studiomilca.com"

var (
	ErrInvalidCredentials = errors.New("invalid email or linking code")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrCodeNotFound       = errors.New("linking code not found")
	ErrCodeAlreadyUsed    = errors.New("linking code already used")
	ErrEmailMismatch      = errors.New("account email does not match client record")
)

// LoginWithCode authenticates a client by email + linking code, both
// matched case-insensitively. The code is NOT consumed here; only the
// explicit link-account flow clears it.
func LoginWithCode(ctx context.Context, db *gorm.DB, email, linkingCode string) (string, *users.User, error) {
	var client users.User
	err := db.Where("role = ? AND LOWER(email) = LOWER(?) AND UPPER(linking_code) = ?",
		users.RoleClient, email, strings.ToUpper(linkingCode)).
		First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	sessionID, err := session.Create(ctx, client.ID)
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	updates := map[string]interface{}{"last_signed_in": now}
	if !client.IsLinked {
		updates["is_linked"] = true
		updates["linked_at"] = now
		client.IsLinked = true
		client.LinkedAt = &now
	}
	if err := db.Model(&users.User{}).Where("id = ?", client.ID).Updates(updates).Error; err != nil {
		return "", nil, err
	}
	client.LastSignedIn = now

	return sessionID, &client, nil
}

// LoginAsAdmin issues a session for an admin account by email alone. There
// is no secret on this path; it must be protected at the deployment layer.
func LoginAsAdmin(ctx context.Context, db *gorm.DB, email string) (string, *users.User, error) {
	var admin users.User
	err := db.Where("role = ? AND LOWER(email) = LOWER(?)", users.RoleAdmin, email).
		First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrAdminNotFound
		}
		return "", nil, err
	}

	sessionID, err := session.Create(ctx, admin.ID)
	if err != nil {
		return "", nil, err
	}

	db.Model(&users.User{}).Where("id = ?", admin.ID).Update("last_signed_in", time.Now())

	return sessionID, &admin, nil
}

// LinkAccount consumes a linking code: the client record is re-homed to the
// calling identity, marked linked, and the code is cleared so a second
// attempt with the same code fails.
func LinkAccount(db *gorm.DB, caller *users.User, linkingCode string) error {
	var client users.User
	err := db.Where("linking_code = ?", linkingCode).First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCodeNotFound
		}
		return err
	}

	if client.IsLinked {
		return ErrCodeAlreadyUsed
	}

	if client.Email != nil && caller.Email != nil && *client.Email != *caller.Email {
		return ErrEmailMismatch
	}

	return db.Model(&users.User{}).Where("id = ?", client.ID).Updates(map[string]interface{}{
		"open_id":      caller.OpenID,
		"is_linked":    true,
		"linked_at":    time.Now(),
		"linking_code": nil,
	}).Error
}

// Logout drops the session. Idempotent.
func Logout(ctx context.Context, sessionID string) {
	session.Destroy(ctx, sessionID)
}

// EnsureAdminExists creates the bootstrap admin on an empty system. Safe to
// call on every start.
func EnsureAdminExists(db *gorm.DB) error {
	var count int64
	if err := db.Model(&users.User{}).Where("role = ?", users.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	logrus.Info("no admin account found, creating default admin")

	name := "Administrador"
	email := DefaultAdminEmail
	now := time.Now()
	admin := users.User{
		OpenID:   "admin_" + randomToken(8),
		Name:     &name,
		Email:    &email,
		Role:     users.RoleAdmin,
		IsLinked: true,
		LinkedAt: &now,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	logrus.WithField("email", email).Info("✅ default admin created, use this email to log in")
	return nil
}

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewLinkingCode returns a 6-character uppercase one-time code.
func NewLinkingCode() string {
	b := make([]byte, 6)
	for i := range b {
		n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		b[i] = codeAlphabet[n.Int64()]
	}
	return string(b)
}

// NewClientPassword generates a one-time password for a freshly created
// client and returns it alongside its bcrypt hash. The plaintext is shown
// to the admin once and only the hash is stored.
func NewClientPassword() (plain string, hash string, err error) {
	plain = randomToken(5)
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", "", err
	}
	return plain, string(hashed), nil
}

func randomToken(n int) string {
	bytes := make([]byte, n)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
