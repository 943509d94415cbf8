package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"Chronicle/models"

	"github.com/gin-gonic/gin"
)

// GetIndexPage serves the global, follow-independent post listing. The whole
// listing is memoized as a single cache entry: every page is cut from the
// same snapshot, so all pages go stale and fresh together. Writes do not
// invalidate it; readers may see a listing up to one expiry window old.
func (server *Server) GetIndexPage(c *gin.Context) {
	ctx := c.Request.Context()

	var posts []models.Post
	if payload, hit := server.IndexCache.Get(ctx); hit {
		if err := json.Unmarshal(payload, &posts); err != nil {
			// A corrupt entry is treated as a miss.
			log.Printf("discarding unreadable index cache entry: %v", err)
			server.IndexCache.Clear(ctx)
			posts = nil
		}
	}

	if posts == nil {
		fresh, err := (&models.Post{}).FindAllPosts(server.DB)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status": http.StatusInternalServerError,
				"error":  "Error fetching posts",
			})
			return
		}
		posts = *fresh

		if payload, err := json.Marshal(posts); err == nil {
			server.IndexCache.Set(ctx, payload)
		}
	}

	page := server.paginateRequest(c, posts)
	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": buildPageResponse(page),
	})
}

// ClearIndexCache drops the memoized index listing immediately. The next
// read recomputes regardless of the remaining expiry window.
func (server *Server) ClearIndexCache(c *gin.Context) {
	server.IndexCache.Clear(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": "Index cache cleared",
	})
}
