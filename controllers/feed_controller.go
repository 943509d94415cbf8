package controllers

import (
	"net/http"

	"Chronicle/models"
	httpctx "Chronicle/utils/httpctx"

	"github.com/gin-gonic/gin"
)

// GetFeed serves the authenticated user's feed: posts by the authors they
// follow, newest first. No cache sits in front of the feed; it is computed
// from the live store on every call, so a post from a freshly-followed
// author is visible immediately. A user following nobody gets an empty page,
// not the global listing and not an error.
func (server *Server) GetFeed(c *gin.Context) {
	uid, ok := httpctx.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status": http.StatusUnauthorized,
			"error":  "Unauthorized",
		})
		return
	}

	following, err := (&models.Follow{}).FolloweeIDs(server.DB, uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Error fetching follows",
		})
		return
	}

	posts, err := server.Feed.FeedFor(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Error building feed",
		})
		return
	}

	page := server.paginateRequest(c, posts)
	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"response": gin.H{
			"following": len(following) > 0,
			"posts":     buildPageResponse(page),
		},
	})
}
