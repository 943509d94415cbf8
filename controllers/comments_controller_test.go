package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateAndListComments(t *testing.T) {
	server := newTestServer(t)
	alice, _ := createTestUser(t, server, "alice")
	_, carolToken := createTestUser(t, server, "carol")

	post := createTestPost(t, server, alice, nil, "a post worth discussing", atMinute(0))

	url := fmt.Sprintf("/api/v1/posts/%d/comments", post.ID)
	w := doRequest(server, http.MethodPost, url, carolToken, map[string]string{
		"body": "great post",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	created := responseField(t, w, "response").(map[string]interface{})
	assert.Equal(t, "great post", created["body"])
	author := created["author"].(map[string]interface{})
	assert.Equal(t, "carol", author["username"])

	// The comment shows up in the post's listing with the same author/text.
	w = doRequest(server, http.MethodGet, url, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	comments := responseField(t, w, "response").([]interface{})
	assert.Len(t, comments, 1)
	listed := comments[0].(map[string]interface{})
	assert.Equal(t, "great post", listed["body"])
	assert.Equal(t, "carol", listed["author"].(map[string]interface{})["username"])
}

func TestCommentOnMissingPostIs404(t *testing.T) {
	server := newTestServer(t)
	_, carolToken := createTestUser(t, server, "carol")

	w := doRequest(server, http.MethodPost, "/api/v1/posts/9999/comments", carolToken, map[string]string{
		"body": "into the void",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(server, http.MethodGet, "/api/v1/posts/9999/comments", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCommentRequiresBody(t *testing.T) {
	server := newTestServer(t)
	alice, _ := createTestUser(t, server, "alice")
	_, carolToken := createTestUser(t, server, "carol")

	post := createTestPost(t, server, alice, nil, "a post", atMinute(0))

	w := doRequest(server, http.MethodPost, fmt.Sprintf("/api/v1/posts/%d/comments", post.ID), carolToken, map[string]string{
		"body": "   ",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCommentRequiresAuth(t *testing.T) {
	server := newTestServer(t)
	alice, _ := createTestUser(t, server, "alice")

	post := createTestPost(t, server, alice, nil, "a post", atMinute(0))

	w := doRequest(server, http.MethodPost, fmt.Sprintf("/api/v1/posts/%d/comments", post.ID), "", map[string]string{
		"body": "anonymous",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCommentsListedNewestFirst(t *testing.T) {
	server := newTestServer(t)
	alice, _ := createTestUser(t, server, "alice")
	_, carolToken := createTestUser(t, server, "carol")

	post := createTestPost(t, server, alice, nil, "a post", atMinute(0))

	url := fmt.Sprintf("/api/v1/posts/%d/comments", post.ID)
	doRequest(server, http.MethodPost, url, carolToken, map[string]string{"body": "first"})
	doRequest(server, http.MethodPost, url, carolToken, map[string]string{"body": "second"})

	w := doRequest(server, http.MethodGet, url, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	comments := responseField(t, w, "response").([]interface{})
	assert.Len(t, comments, 2)
}
