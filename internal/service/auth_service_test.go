package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rajat6235/Robusters-POS-sub001/internal/config"
	"github.com/rajat6235/Robusters-POS-sub001/internal/constants"
	"github.com/rajat6235/Robusters-POS-sub001/internal/models"
	"github.com/rajat6235/Robusters-POS-sub001/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthServiceTest(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:auth_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret-key-for-auth-service-tests"
	cfg.JWT.ExpireHours = 1
	return NewAuthService(cfg, repository.NewUserRepository(db)), db
}

func createAuthTestUser(t *testing.T, svc *AuthService, db *gorm.DB, username, password, role string, active bool) models.User {
	t.Helper()

	hash, err := svc.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password failed: %v", err)
	}
	user := models.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		IsActive:     active,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if !active {
		// zero-value bool is skipped on create because of the column default
		if err := db.Model(&user).Update("is_active", false).Error; err != nil {
			t.Fatalf("deactivate user failed: %v", err)
		}
	}
	return user
}

func TestLogin(t *testing.T) {
	svc, db := setupAuthServiceTest(t)
	created := createAuthTestUser(t, svc, db, "counter1", "s3cret-pass", constants.RoleManager, true)

	user, token, expiresAt, err := svc.Login("counter1", "s3cret-pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != created.ID {
		t.Fatalf("unexpected user: %d", user.ID)
	}
	if token == "" {
		t.Fatalf("expected token")
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("expected future expiry")
	}
	if user.LastLoginAt == nil {
		t.Fatalf("expected last login recorded")
	}

	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != created.ID || claims.Username != "counter1" || claims.Role != constants.RoleManager {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLoginFailures(t *testing.T) {
	svc, db := setupAuthServiceTest(t)
	createAuthTestUser(t, svc, db, "counter1", "s3cret-pass", constants.RoleManager, true)
	createAuthTestUser(t, svc, db, "gone", "whatever1", constants.RoleManager, false)

	if _, _, _, err := svc.Login("counter1", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if _, _, _, err := svc.Login("nobody", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for unknown user, got %v", err)
	}
	if _, _, _, err := svc.Login("gone", "whatever1"); !errors.Is(err, ErrUserDisabled) {
		t.Fatalf("expected disabled, got %v", err)
	}
}

func TestParseJWTRejectsTampering(t *testing.T) {
	svc, db := setupAuthServiceTest(t)
	user := createAuthTestUser(t, svc, db, "counter1", "s3cret-pass", constants.RoleManager, true)

	token, _, err := svc.GenerateJWT(&user)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := svc.ParseJWT(token + "x"); err == nil {
		t.Fatalf("expected tampered token rejected")
	}

	other := NewAuthService(func() *config.Config {
		cfg := &config.Config{}
		cfg.JWT.SecretKey = "a-different-secret-entirely-here"
		cfg.JWT.ExpireHours = 1
		return cfg
	}(), nil)
	if _, err := other.ParseJWT(token); err == nil {
		t.Fatalf("expected wrong-key token rejected")
	}
}
