package middleware

import (
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brandlab/positioning-api/internal/model"
	"github.com/brandlab/positioning-api/internal/repository"
	gormsqlite "github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const testSecret = "test-jwt-secret"

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.Profile{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func newAuthApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	t.Setenv("SUPABASE_JWT_SECRET", testSecret)
	db := openTestDB(t)

	app := fiber.New()
	app.Use(Auth(repository.NewProfileRepository(db)))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		id, _ := c.Locals("userID").(uuid.UUID)
		return c.JSON(fiber.Map{"id": id.String()})
	})
	return app, db
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestAuthCreatesProfileOnFirstSight(t *testing.T) {
	app, db := newAuthApp(t)
	subject := uuid.New()
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":   subject.String(),
		"email": "ana@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var profile model.Profile
	if err := db.First(&profile, "id = ?", subject).Error; err != nil {
		t.Fatalf("profile not created: %v", err)
	}
	if profile.Email != "ana@example.com" {
		t.Fatalf("profile email = %q", profile.Email)
	}
	if profile.IsAdmin {
		t.Fatal("fresh profile must not be admin")
	}
}

func TestAuthRejectsMissingToken(t *testing.T) {
	app, _ := newAuthApp(t)
	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthRejectsBadSignature(t *testing.T) {
	app, _ := newAuthApp(t)
	token := signToken(t, "some-other-secret", jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	app, _ := newAuthApp(t)
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestRequireAdmin(t *testing.T) {
	app := fiber.New()
	app.Get("/admin", func(c *fiber.Ctx) error {
		c.Locals("isAdmin", false)
		return c.Next()
	}, RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
}
