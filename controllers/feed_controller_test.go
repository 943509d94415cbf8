package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeedEmptyWhenFollowingNobody(t *testing.T) {
	server := newTestServer(t)
	alice, _ := createTestUser(t, server, "alice")
	_, bobToken := createTestUser(t, server, "bob")

	createTestPost(t, server, alice, nil, "invisible to non-followers", atMinute(0))

	w := doRequest(server, http.MethodGet, "/api/v1/feed", bobToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	resp := responseField(t, w, "response").(map[string]interface{})
	assert.Equal(t, false, resp["following"])
	assert.Len(t, pageItemIDs(t, resp["posts"]), 0)
}

func TestFeedShowsOnlyFollowedAuthors(t *testing.T) {
	server := newTestServer(t)
	alice, _ := createTestUser(t, server, "alice")
	carol, _ := createTestUser(t, server, "carol")
	_, bobToken := createTestUser(t, server, "bob")

	fromAlice := createTestPost(t, server, alice, nil, "from alice", atMinute(0))
	fromCarol := createTestPost(t, server, carol, nil, "from carol", atMinute(1))

	doRequest(server, http.MethodPost, fmt.Sprintf("/api/v1/users/%d/follow", alice.ID), bobToken, nil)

	w := doRequest(server, http.MethodGet, "/api/v1/feed", bobToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	resp := responseField(t, w, "response").(map[string]interface{})
	assert.Equal(t, true, resp["following"])
	ids := pageItemIDs(t, resp["posts"])
	assert.Contains(t, ids, fromAlice.ID)
	assert.NotContains(t, ids, fromCarol.ID)
}

func TestFeedOrderedNewestFirstAcrossAuthors(t *testing.T) {
	server := newTestServer(t)
	alice, _ := createTestUser(t, server, "alice")
	carol, _ := createTestUser(t, server, "carol")
	_, bobToken := createTestUser(t, server, "bob")

	p1 := createTestPost(t, server, alice, nil, "first", atMinute(0))
	p2 := createTestPost(t, server, carol, nil, "second", atMinute(1))
	p3 := createTestPost(t, server, alice, nil, "third", atMinute(2))

	doRequest(server, http.MethodPost, fmt.Sprintf("/api/v1/users/%d/follow", alice.ID), bobToken, nil)
	doRequest(server, http.MethodPost, fmt.Sprintf("/api/v1/users/%d/follow", carol.ID), bobToken, nil)

	w := doRequest(server, http.MethodGet, "/api/v1/feed", bobToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	resp := responseField(t, w, "response").(map[string]interface{})
	assert.Equal(t, []uint{p3.ID, p2.ID, p1.ID}, pageItemIDs(t, resp["posts"]))
}

// A new post from a followed author shows up in the feed immediately, even
// while the cached index listing is still serving a stale snapshot.
func TestFeedIsFreshWhileIndexIsCached(t *testing.T) {
	server := newTestServer(t)
	alice, _ := createTestUser(t, server, "alice")
	_, bobToken := createTestUser(t, server, "bob")

	doRequest(server, http.MethodPost, fmt.Sprintf("/api/v1/users/%d/follow", alice.ID), bobToken, nil)
	createTestPost(t, server, alice, nil, "warms the cache", atMinute(0))

	// Warm the index cache before the new post exists.
	w := doRequest(server, http.MethodGet, "/api/v1/posts", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	fresh := createTestPost(t, server, alice, nil, "just published", atMinute(1))

	w = doRequest(server, http.MethodGet, "/api/v1/feed", bobToken, nil)
	resp := responseField(t, w, "response").(map[string]interface{})
	assert.Contains(t, pageItemIDs(t, resp["posts"]), fresh.ID)

	w = doRequest(server, http.MethodGet, "/api/v1/posts", "", nil)
	assert.NotContains(t, pageItemIDs(t, responseField(t, w, "response")), fresh.ID)
}

func TestFeedStopsAfterUnfollow(t *testing.T) {
	server := newTestServer(t)
	alice, _ := createTestUser(t, server, "alice")
	_, bobToken := createTestUser(t, server, "bob")

	post := createTestPost(t, server, alice, nil, "from alice", atMinute(0))

	url := fmt.Sprintf("/api/v1/users/%d/follow", alice.ID)
	doRequest(server, http.MethodPost, url, bobToken, nil)

	w := doRequest(server, http.MethodGet, "/api/v1/feed", bobToken, nil)
	resp := responseField(t, w, "response").(map[string]interface{})
	assert.Contains(t, pageItemIDs(t, resp["posts"]), post.ID)

	doRequest(server, http.MethodDelete, url, bobToken, nil)

	w = doRequest(server, http.MethodGet, "/api/v1/feed", bobToken, nil)
	resp = responseField(t, w, "response").(map[string]interface{})
	assert.Equal(t, false, resp["following"])
	assert.Len(t, pageItemIDs(t, resp["posts"]), 0)
}

func TestFeedRequiresAuth(t *testing.T) {
	server := newTestServer(t)

	w := doRequest(server, http.MethodGet, "/api/v1/feed", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
