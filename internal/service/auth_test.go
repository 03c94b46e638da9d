package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/roomanalam/My-blog/internal/domain"
	"github.com/roomanalam/My-blog/internal/repository/sqlite"
	"github.com/roomanalam/My-blog/internal/service"
)

const testSessionSecret = "test-secret-key-for-unit-tests"

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestAuthService(t *testing.T) *service.AuthService {
	t.Helper()
	db := newTestDB(t)
	// Use cost 4 for fast tests.
	return service.NewAuthService(db.Users(), testSessionSecret, 4)
}

func TestAuthService_Register_Success(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	user, err := auth.Register(ctx, "new@example.com", "New User", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if user.ID == 0 {
		t.Fatal("expected user ID to be set")
	}
	if user.Email != "new@example.com" {
		t.Fatalf("expected email new@example.com, got %s", user.Email)
	}
	if user.PasswordHash == "password123" {
		t.Fatal("password stored in plaintext")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, "dup@example.com", "User 1", "password123")
	if err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err = auth.Register(ctx, "dup@example.com", "User 2", "password456")
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	// The first account still logs in fine.
	if _, _, err := auth.Login(ctx, "dup@example.com", "password123"); err != nil {
		t.Fatalf("first account login after duplicate attempt: %v", err)
	}
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, "weak@example.com", "Weak", "short")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuthService_Register_EmptyFields(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		display  string
		password string
	}{
		{"empty email", "", "Name", "password123"},
		{"empty name", "a@b.com", "", "password123"},
		{"empty password", "a@b.com", "Name", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := auth.Register(ctx, tc.email, tc.display, tc.password)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	registered, err := auth.Register(ctx, "login@example.com", "Login User", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, token, err := auth.Login(ctx, "login@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if user.ID != registered.ID {
		t.Fatalf("expected user id %d, got %d", registered.ID, user.ID)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, "wrongpw@example.com", "User", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, _, err = auth.Login(ctx, "wrongpw@example.com", "wrongpassword")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	_, _, err := auth.Login(ctx, "nobody@example.com", "password123")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAuthService_Token_GenerateAndValidate(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	user, err := auth.Register(ctx, "jwt@example.com", "JWT User", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, token, err := auth.Login(ctx, "jwt@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	userID, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if userID != user.ID {
		t.Fatalf("expected user ID %d, got %d", user.ID, userID)
	}
}

func TestAuthService_Token_Invalid(t *testing.T) {
	auth := newTestAuthService(t)

	_, err := auth.ValidateToken("not-a-valid-jwt")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_Token_Tampered(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, "tamper@example.com", "Tamper", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, token, err := auth.Login(ctx, "tamper@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	// Flip several characters in the signature.
	tampered := token[:len(token)-5] + "XXXXX"
	_, err = auth.ValidateToken(tampered)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for tampered token, got %v", err)
	}
}

func TestAuthService_Token_WrongSecret(t *testing.T) {
	auth1 := newTestAuthService(t)
	ctx := context.Background()

	_, err := auth1.Register(ctx, "secret@example.com", "Secret", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, token, err := auth1.Login(ctx, "secret@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	// A service with a different secret must reject the token.
	db2 := newTestDB(t)
	auth2 := service.NewAuthService(db2.Users(), "different-secret", 4)

	_, err = auth2.ValidateToken(token)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for wrong secret, got %v", err)
	}
}
