package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"room_manager/database"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cookieByName(resp *http.Response, name string) *http.Cookie {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestLogin(t *testing.T) {
	app, db := setupApp(t)
	database.SeedData(db)

	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/login",
		`{"email":"demo@example.com","password":"demo1234"}`, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	access := cookieByName(resp, "access_token")
	require.NotNil(t, access)
	assert.True(t, access.HttpOnly)
	assert.NotNil(t, cookieByName(resp, "refresh_token"))

	var body struct {
		Message string `json:"message"`
		User    struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "login success", body.Message)
	assert.Equal(t, "demo@example.com", body.User.Email)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app, db := setupApp(t)
	database.SeedData(db)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "wrong password", body: `{"email":"demo@example.com","password":"nope"}`, wantStatus: fiber.StatusUnauthorized},
		{name: "unknown user", body: `{"email":"ghost@example.com","password":"demo1234"}`, wantStatus: fiber.StatusUnauthorized},
		{name: "missing password", body: `{"email":"demo@example.com"}`, wantStatus: fiber.StatusBadRequest},
		{name: "empty body", body: `{}`, wantStatus: fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, app, fiber.MethodPost, "/api/auth/login", tt.body, "")
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestLoginRejectsUserWithoutCredential(t *testing.T) {
	app, db := setupApp(t)
	seedRooms(t, db)
	token := bearerToken(t)

	// A user created through a booking has no password hash.
	resp := doJSON(t, app, fiber.MethodPost, "/api/bookings",
		createBody("walkin@example.com", "Walk In", 1, "2025-09-09T01:00:00Z", "2025-09-09T02:00:00Z"), token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/api/auth/login",
		`{"email":"walkin@example.com","password":""}`, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/api/auth/login",
		`{"email":"walkin@example.com","password":"anything"}`, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestMe(t *testing.T) {
	app, _ := setupApp(t)
	token := bearerToken(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/auth/me", "", token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "demo@example.com", body.Email)
	assert.Equal(t, "Demo User", body.Name)

	resp = doJSON(t, app, fiber.MethodGet, "/api/auth/me", "", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRefreshToken(t *testing.T) {
	app, db := setupApp(t)
	database.SeedData(db)

	login := doJSON(t, app, fiber.MethodPost, "/api/auth/login",
		`{"email":"demo@example.com","password":"demo1234"}`, "")
	require.Equal(t, fiber.StatusOK, login.StatusCode)
	refresh := cookieByName(login, "refresh_token")
	require.NotNil(t, refresh)

	req := httptest.NewRequest(fiber.MethodPost, "/api/auth/refresh-token", nil)
	req.AddCookie(refresh)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotNil(t, cookieByName(resp, "access_token"))

	// No cookie at all.
	resp = doJSON(t, app, fiber.MethodPost, "/api/auth/refresh-token", "", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
