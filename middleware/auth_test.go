package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"MissionControl/Models"
)

func setupAccounts(t *testing.T) {
	t.Helper()
	t.Setenv("ACCOUNTS_DB_PATH", filepath.Join(t.TempDir(), "accounts.db"))
	Models.Connect()
}

func signedCookie(t *testing.T, userID uint, expiry time.Duration) *http.Cookie {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    strconv.Itoa(int(userID)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
	}).SignedString([]byte(SecretKey))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return &http.Cookie{Name: "jwt", Value: token}
}

func lookupUser(t *testing.T, username string) Models.User {
	t.Helper()
	var user Models.User
	if err := Models.DB.Where("username = ?", username).First(&user).Error; err != nil {
		t.Fatalf("seeded account %q missing: %v", username, err)
	}
	return user
}

func TestVerifyPermissionFloor(t *testing.T) {
	setupAccounts(t)

	app := fiber.New()
	app.Get("/any", Verify(Models.PermissionAgent), func(c *fiber.Ctx) error {
		user := c.Locals("user").(Models.User)
		return c.JSON(fiber.Map{"role": user.Role()})
	})
	app.Get("/admin", Verify(Models.PermissionAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	admin := lookupUser(t, "casuallworkupdate@123")
	agent := lookupUser(t, "casuall@14")

	// No cookie at all.
	resp, _ := app.Test(httptest.NewRequest("GET", "/any", nil))
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("missing cookie: got %d", resp.StatusCode)
	}

	// Garbage token.
	req := httptest.NewRequest("GET", "/any", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: "not-a-token"})
	resp, _ = app.Test(req)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("garbage token: got %d", resp.StatusCode)
	}

	// Expired token.
	req = httptest.NewRequest("GET", "/any", nil)
	req.AddCookie(signedCookie(t, agent.ID, -time.Hour))
	resp, _ = app.Test(req)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expired token: got %d", resp.StatusCode)
	}

	// Agent reaches the open route and carries the USER role.
	req = httptest.NewRequest("GET", "/any", nil)
	req.AddCookie(signedCookie(t, agent.ID, time.Hour))
	resp, _ = app.Test(req)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("agent on open route: got %d", resp.StatusCode)
	}
	var body map[string]string
	json.NewDecoder(resp.Body).Decode(&body)
	if body["role"] != Models.RoleUser {
		t.Fatalf("agent role: got %q", body["role"])
	}

	// Agent is below the admin floor.
	req = httptest.NewRequest("GET", "/admin", nil)
	req.AddCookie(signedCookie(t, agent.ID, time.Hour))
	resp, _ = app.Test(req)
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("agent on admin route: got %d", resp.StatusCode)
	}

	// Admin clears it.
	req = httptest.NewRequest("GET", "/admin", nil)
	req.AddCookie(signedCookie(t, admin.ID, time.Hour))
	resp, _ = app.Test(req)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("admin on admin route: got %d", resp.StatusCode)
	}
}

func TestVerifyUnknownAccount(t *testing.T) {
	setupAccounts(t)

	app := fiber.New()
	app.Get("/any", Verify(Models.PermissionAgent), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	// Valid signature, but the account row is gone.
	req := httptest.NewRequest("GET", "/any", nil)
	req.AddCookie(signedCookie(t, 9999, time.Hour))
	resp, _ := app.Test(req)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("unknown account: got %d", resp.StatusCode)
	}
}
