package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"feedbackhub/internal/auth"
	"feedbackhub/internal/http/handlers"
	"feedbackhub/internal/repos"
)

// newTestApp wires the same routes as cmd/feedbackhub against a
// throwaway in-memory database.
func newTestApp(t *testing.T) (*fiber.App, *auth.Manager) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	tokens := auth.NewManager("test-secret", time.Hour)
	deps := handlers.NewDeps(db, tokens)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok && e.Code < fiber.StatusInternalServerError {
				return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong. Please try again."})
		},
	})

	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("Feedback backend is running") })
	authAPI := app.Group("/api/auth")
	authAPI.Get("/signup", deps.AuthHandler.SignupInfo)
	authAPI.Post("/signup", deps.AuthHandler.Signup)
	authAPI.Get("/login", deps.AuthHandler.LoginInfo)
	authAPI.Post("/login", deps.AuthHandler.Login)

	requireAuth := handlers.RequireAuth(tokens)
	app.Post("/submit", requireAuth, deps.FeedbackHandler.Submit)
	app.Get("/feedbacks", requireAuth, deps.FeedbackHandler.List)
	app.Get("/feedbacks/sent", requireAuth, deps.FeedbackHandler.Sent)
	app.Patch("/acknowledge/:id", requireAuth, deps.FeedbackHandler.Acknowledge)

	return app, tokens
}

func jsonReq(method, path string, body any, token string) *http.Request {
	var r io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeMap(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return m
}

func decodeList(t *testing.T, resp *http.Response) []map[string]any {
	t.Helper()
	var l []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&l); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return l
}

func signupUser(t *testing.T, app *fiber.App, name, empID, email, password, role string) {
	t.Helper()
	body := map[string]any{
		"name": name, "emp_id": empID, "password": password,
		"role": role, "department": "eng",
	}
	if email != "" {
		body["email"] = email
	}
	resp, err := app.Test(jsonReq("POST", "/api/auth/signup", body, ""))
	if err != nil {
		t.Fatalf("signup request: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("signup %s: expected 201, got %d", empID, resp.StatusCode)
	}
}

func loginUser(t *testing.T, app *fiber.App, empID, password, role string) string {
	t.Helper()
	resp, err := app.Test(jsonReq("POST", "/api/auth/login", map[string]any{
		"emp_id": empID, "password": password, "role": role,
	}, ""))
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d", empID, resp.StatusCode)
	}
	body := decodeMap(t, resp)
	tok, _ := body["token"].(string)
	if tok == "" {
		t.Fatal("login response missing token")
	}
	return tok
}
