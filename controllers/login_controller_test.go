package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogin(t *testing.T) {
	server := newTestServer(t)
	createTestUser(t, server, "alice")

	w := doRequest(server, http.MethodPost, "/api/v1/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	resp := responseField(t, w, "response").(map[string]interface{})
	assert.Equal(t, "alice", resp["username"])
	assert.NotEmpty(t, resp["token"])
}

func TestLoginWrongPassword(t *testing.T) {
	server := newTestServer(t)
	createTestUser(t, server, "alice")

	w := doRequest(server, http.MethodPost, "/api/v1/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "not-the-password",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	server := newTestServer(t)

	w := doRequest(server, http.MethodPost, "/api/v1/login", "", map[string]string{
		"email":    "ghost@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestLoginTokenGrantsAccess(t *testing.T) {
	server := newTestServer(t)
	createTestUser(t, server, "alice")

	w := doRequest(server, http.MethodPost, "/api/v1/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	token := responseField(t, w, "response").(map[string]interface{})["token"].(string)

	w = doRequest(server, http.MethodPost, "/api/v1/posts", token, map[string]interface{}{
		"content": "logged in and posting",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}
