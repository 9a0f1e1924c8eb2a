package v1_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"skillswap/internal/config"
	"skillswap/internal/delivery/http/middleware"
	v1 "skillswap/internal/delivery/http/routes/v1"
	"skillswap/internal/store/memory"

	"github.com/gofiber/fiber/v3"
)

func newTestApp() *fiber.App {
	cfg := config.Config{
		JWT: config.JWTConfig{
			AccessSecret:     "test-access",
			RefreshSecret:    "test-refresh",
			AccessExpiresIn:  15 * time.Minute,
			RefreshExpiresIn: 7 * 24 * time.Hour,
		},
	}

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware().Middleware())
	v1.Register(app.Group("/api/v1"), cfg, memory.NewStores(), nil)
	return app
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return resp.StatusCode, env
}

func registerUser(t *testing.T, app *fiber.App, email, role string) (int64, string) {
	t.Helper()

	code, env := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"email":    email,
		"password": "pw-" + email,
		"role":     role,
	})
	if code != http.StatusCreated {
		t.Fatalf("register %s: status %d", email, code)
	}

	var data struct {
		User struct {
			ID int64 `json:"id"`
		} `json:"user"`
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode register data: %v", err)
	}
	return data.User.ID, data.AccessToken
}

func TestAPI_RegisterLoginAndMe(t *testing.T) {
	app := newTestApp()

	_, token := registerUser(t, app, "alice@example.com", "agent")

	code, env := doJSON(t, app, http.MethodGet, "/api/v1/users/me", token, nil)
	if code != http.StatusOK {
		t.Fatalf("me: status %d", code)
	}
	var me struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(env.Data, &me); err != nil {
		t.Fatalf("decode me: %v", err)
	}
	if me.Email != "alice@example.com" {
		t.Fatalf("expected alice, got %q", me.Email)
	}

	// Wrong password.
	code, _ = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"email":    "alice@example.com",
		"password": "wrong",
	})
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad login, got %d", code)
	}

	// Duplicate registration.
	code, _ = doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"email":    "ALICE@example.com",
		"password": "x",
	})
	if code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", code)
	}
}

func TestAPI_ProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp()

	code, _ := doJSON(t, app, http.MethodGet, "/api/v1/users/me", "", nil)
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", code)
	}

	code, _ = doJSON(t, app, http.MethodGet, "/api/v1/expenses", "garbage-token", nil)
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with bad token, got %d", code)
	}
}

func TestAPI_SkillAndSuggestionFlow(t *testing.T) {
	app := newTestApp()

	_, learnerTok := registerUser(t, app, "learner@example.com", "agent")
	_, teacherTok := registerUser(t, app, "teacher@example.com", "agent")

	code, _ := doJSON(t, app, http.MethodPost, "/api/v1/me/skills", learnerTok, map[string]any{
		"name": "go", "direction": "learn",
	})
	if code != http.StatusCreated {
		t.Fatalf("add learn skill: status %d", code)
	}
	code, env := doJSON(t, app, http.MethodPost, "/api/v1/me/skills", teacherTok, map[string]any{
		"name": "Go", "direction": "teach", "level": "advanced",
	})
	if code != http.StatusCreated {
		t.Fatalf("add teach skill: status %d", code)
	}
	var teachSkill struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &teachSkill); err != nil {
		t.Fatalf("decode skill: %v", err)
	}

	// Unknown direction is rejected.
	code, _ = doJSON(t, app, http.MethodPost, "/api/v1/me/skills", learnerTok, map[string]any{
		"name": "Rust", "direction": "both",
	})
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad direction, got %d", code)
	}

	code, env = doJSON(t, app, http.MethodGet, "/api/v1/matches/suggestions", learnerTok, nil)
	if code != http.StatusOK {
		t.Fatalf("suggestions: status %d", code)
	}
	var suggestions []struct {
		Teacher struct {
			Email string `json:"email"`
		} `json:"teacher"`
		Skill struct {
			ID int64 `json:"id"`
		} `json:"skill"`
	}
	if err := json.Unmarshal(env.Data, &suggestions); err != nil {
		t.Fatalf("decode suggestions: %v", err)
	}
	if len(suggestions) != 1 || suggestions[0].Skill.ID != teachSkill.ID {
		t.Fatalf("unexpected suggestions: %+v", suggestions)
	}
}

func TestAPI_MatchAndMessageFlow(t *testing.T) {
	app := newTestApp()

	_, learnerTok := registerUser(t, app, "learner@example.com", "agent")
	teacherID, teacherTok := registerUser(t, app, "teacher@example.com", "agent")

	_, env := doJSON(t, app, http.MethodPost, "/api/v1/me/skills", teacherTok, map[string]any{
		"name": "Go", "direction": "teach",
	})
	var teachSkill struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &teachSkill); err != nil {
		t.Fatalf("decode skill: %v", err)
	}

	code, env := doJSON(t, app, http.MethodPost, "/api/v1/matches", learnerTok, map[string]any{
		"teacher_id": teacherID,
		"skill_id":   teachSkill.ID,
	})
	if code != http.StatusCreated {
		t.Fatalf("request match: status %d", code)
	}
	var m struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &m); err != nil {
		t.Fatalf("decode match: %v", err)
	}
	if m.Status != "pending" {
		t.Fatalf("expected pending, got %q", m.Status)
	}

	// Duplicate pair.
	code, _ = doJSON(t, app, http.MethodPost, "/api/v1/matches", learnerTok, map[string]any{
		"teacher_id": teacherID,
		"skill_id":   teachSkill.ID,
	})
	if code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate pair, got %d", code)
	}

	code, _ = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/v1/matches/%d/status", m.ID), teacherTok, map[string]any{
		"status": "accepted",
	})
	if code != http.StatusOK {
		t.Fatalf("accept match: status %d", code)
	}

	msgPath := fmt.Sprintf("/api/v1/matches/%d/messages", m.ID)
	for _, content := range []string{"hi", "ready when you are"} {
		code, _ = doJSON(t, app, http.MethodPost, msgPath, learnerTok, map[string]any{"content": content})
		if code != http.StatusCreated {
			t.Fatalf("send message: status %d", code)
		}
	}

	code, env = doJSON(t, app, http.MethodGet, msgPath, teacherTok, nil)
	if code != http.StatusOK {
		t.Fatalf("list messages: status %d", code)
	}
	var msgs []struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(env.Data, &msgs); err != nil {
		t.Fatalf("decode messages: %v", err)
	}
	if len(msgs) != 2 || msgs[0].Content != "hi" {
		t.Fatalf("unexpected messages: %+v", msgs)
	}

	// Outsiders cannot read the thread.
	_, outsiderTok := registerUser(t, app, "outsider@example.com", "agent")
	code, _ = doJSON(t, app, http.MethodGet, msgPath, outsiderTok, nil)
	if code != http.StatusForbidden {
		t.Fatalf("expected 403 for outsider, got %d", code)
	}
}

func TestAPI_ExpenseApprovalFlow(t *testing.T) {
	app := newTestApp()

	_, agentTok := registerUser(t, app, "agent@example.com", "agent")
	_, managerTok := registerUser(t, app, "manager@example.com", "manager")

	code, env := doJSON(t, app, http.MethodPost, "/api/v1/expenses", agentTok, map[string]any{
		"title": "Team dinner", "amount": 96.4, "category": "meals",
	})
	if code != http.StatusCreated {
		t.Fatalf("create expense: status %d", code)
	}
	var exp struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &exp); err != nil {
		t.Fatalf("decode expense: %v", err)
	}
	if exp.Status != "pending" {
		t.Fatalf("expected pending, got %q", exp.Status)
	}

	// Deciding before submission conflicts.
	approvalsPath := fmt.Sprintf("/api/v1/expenses/%d/approvals", exp.ID)
	code, _ = doJSON(t, app, http.MethodPost, approvalsPath, managerTok, map[string]any{"status": "approved"})
	if code != http.StatusConflict {
		t.Fatalf("expected 409 before submit, got %d", code)
	}

	code, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/expenses/%d/submit", exp.ID), agentTok, nil)
	if code != http.StatusOK {
		t.Fatalf("submit: status %d", code)
	}

	// Agents cannot decide.
	code, _ = doJSON(t, app, http.MethodPost, approvalsPath, agentTok, map[string]any{"status": "approved"})
	if code != http.StatusForbidden {
		t.Fatalf("expected 403 for agent decider, got %d", code)
	}

	code, env = doJSON(t, app, http.MethodPost, approvalsPath, managerTok, map[string]any{
		"status": "approved", "comments": "ok",
	})
	if code != http.StatusCreated {
		t.Fatalf("decide: status %d", code)
	}
	var decision struct {
		Expense struct {
			Status     string `json:"status"`
			ApprovedBy *int64 `json:"approved_by"`
		} `json:"expense"`
	}
	if err := json.Unmarshal(env.Data, &decision); err != nil {
		t.Fatalf("decode decision: %v", err)
	}
	if decision.Expense.Status != "approved" || decision.Expense.ApprovedBy == nil {
		t.Fatalf("unexpected decided expense: %+v", decision.Expense)
	}

	// Terminal expenses cannot be edited or re-decided.
	code, _ = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/v1/expenses/%d", exp.ID), agentTok, map[string]any{"title": "fixed"})
	if code != http.StatusConflict {
		t.Fatalf("expected 409 editing approved expense, got %d", code)
	}
	code, _ = doJSON(t, app, http.MethodPost, approvalsPath, managerTok, map[string]any{"status": "rejected"})
	if code != http.StatusConflict {
		t.Fatalf("expected 409 re-deciding, got %d", code)
	}

	code, env = doJSON(t, app, http.MethodGet, approvalsPath, agentTok, nil)
	if code != http.StatusOK {
		t.Fatalf("list approvals: status %d", code)
	}
	var approvals []struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &approvals); err != nil {
		t.Fatalf("decode approvals: %v", err)
	}
	if len(approvals) != 1 || approvals[0].Status != "approved" {
		t.Fatalf("unexpected approvals: %+v", approvals)
	}
}
