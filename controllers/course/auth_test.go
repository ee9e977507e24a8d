package controllers_test

import (
	"encoding/json"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authData struct {
	Token string `json:"token"`
	User  struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
}

func TestRegisterLoginFlow(t *testing.T) {
	app := setupTestApp(t)

	resp, env := doJSON(t, app, fiber.MethodPost, "/auth/register", "", fiber.Map{
		"name":     "Alex Learner",
		"email":    "alex@test.dev",
		"password": "secret123",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var registered authData
	require.NoError(t, json.Unmarshal(env.Data, &registered))
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "STUDENT", registered.User.Role)

	// Duplicate email is rejected
	resp, _ = doJSON(t, app, fiber.MethodPost, "/auth/register", "", fiber.Map{
		"name":     "Alex Again",
		"email":    "alex@test.dev",
		"password": "secret123",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp, env = doJSON(t, app, fiber.MethodPost, "/auth/login", "", fiber.Map{
		"email":    "alex@test.dev",
		"password": "secret123",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var loggedIn authData
	require.NoError(t, json.Unmarshal(env.Data, &loggedIn))
	assert.NotEmpty(t, loggedIn.Token)

	// The issued token works against the profile endpoint
	resp, env = doJSON(t, app, fiber.MethodGet, "/auth/me", loggedIn.Token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var me struct {
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "alex@test.dev", me.Email)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	app := setupTestApp(t)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/auth/register", "", fiber.Map{
		"name":     "Alex Learner",
		"email":    "alex@test.dev",
		"password": "secret123",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodPost, "/auth/login", "", fiber.Map{
		"email":    "alex@test.dev",
		"password": "wrong-password",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRegisterValidation(t *testing.T) {
	app := setupTestApp(t)

	resp, env := doJSON(t, app, fiber.MethodPost, "/auth/register", "", fiber.Map{
		"name":     "A",
		"email":    "not-an-email",
		"password": "123",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, env.Errors, "name")
	assert.Contains(t, env.Errors, "email")
	assert.Contains(t, env.Errors, "password")
}
