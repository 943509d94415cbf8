package controllers

import (
	"net/http"
	"testing"

	"Chronicle/models"

	"github.com/stretchr/testify/assert"
)

func TestCreateGroupDerivesSlug(t *testing.T) {
	server := newTestServer(t)
	_, aliceToken := createTestUser(t, server, "alice")

	w := doRequest(server, http.MethodPost, "/api/v1/groups", aliceToken, map[string]string{
		"title": "Weekend Projects",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	created := responseField(t, w, "response").(map[string]interface{})
	assert.Equal(t, "weekend-projects", created["slug"])
}

func TestCreateGroupDuplicateTitleFails(t *testing.T) {
	server := newTestServer(t)
	_, aliceToken := createTestUser(t, server, "alice")
	createTestGroup(t, server, "Weekend Projects", "weekend-projects")

	w := doRequest(server, http.MethodPost, "/api/v1/groups", aliceToken, map[string]string{
		"title": "Weekend Projects",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var count int64
	server.DB.Model(&models.Group{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGetGroupBySlug(t *testing.T) {
	server := newTestServer(t)
	createTestGroup(t, server, "Group One", "g1")

	w := doRequest(server, http.MethodGet, "/api/v1/groups/g1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	group := responseField(t, w, "response").(map[string]interface{})
	assert.Equal(t, "Group One", group["title"])

	w = doRequest(server, http.MethodGet, "/api/v1/groups/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetGroups(t *testing.T) {
	server := newTestServer(t)
	createTestGroup(t, server, "Group One", "g1")
	createTestGroup(t, server, "Group Two", "g2")

	w := doRequest(server, http.MethodGet, "/api/v1/groups", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, responseField(t, w, "response").([]interface{}), 2)
}

func TestGroupPostsForUnknownGroupIs404(t *testing.T) {
	server := newTestServer(t)

	w := doRequest(server, http.MethodGet, "/api/v1/groups/missing/posts", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
