package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rowanvale/tally/internal/db"
)

func newTestApp(t *testing.T) (*fiber.App, *Handler) {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "tally-test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	handler := NewHandler(database, "test-secret", time.UTC, false)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, handler
}

// registerAndLogin creates an account and returns its auth cookie header.
func registerAndLogin(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	response := postJSON(t, app, "", "/api/auth/register", map[string]any{
		"email":    email,
		"password": "correct-horse",
	})
	defer response.Body.Close()
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register expected 201, got %d", response.StatusCode)
	}

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName {
			return cookie.Name + "=" + cookie.Value
		}
	}
	t.Fatal("register response carried no auth cookie")
	return ""
}

func postJSON(t *testing.T, app *fiber.App, authCookie string, path string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	request := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	return response
}

func doRequest(t *testing.T, app *fiber.App, method string, authCookie string, path string) *http.Response {
	t.Helper()

	request := httptest.NewRequest(method, path, nil)
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeBody(t *testing.T, response *http.Response, target any) {
	t.Helper()

	defer response.Body.Close()
	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("decode body %q: %v", strings.TrimSpace(string(raw)), err)
	}
}
