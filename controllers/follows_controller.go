package controllers

import (
	"errors"
	"net/http"

	"Chronicle/models"
	"Chronicle/responses"
	httpctx "Chronicle/utils/httpctx"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// FollowUser godoc
// @Summary      Follow an author
// @Description  Follow another user as the authenticated user
// @Tags         follows
// @Produce      json
// @Param        id   path      string  true  "User ID to follow"
// @Success      200  {object}  map[string]interface{}
// @Success      201  {object}  map[string]interface{}
// @Router       /users/{id}/follow [post]
// @Security     BearerAuth
func (server *Server) FollowUser(c *gin.Context) {
	requestorID, ok := httpctx.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	target, err := resolveUserByIdentifier(server.DB, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	created, err := (&models.Follow{}).FollowUser(server.DB, requestorID, target.ID)
	if errors.Is(err, models.ErrSelfFollow) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot follow yourself"})
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error following user"})
		return
	}

	// A repeated follow is a successful no-op, not a failure.
	status := http.StatusOK
	message := "Already following user"
	if created {
		status = http.StatusCreated
		message = "User followed successfully"
	}
	c.JSON(status, gin.H{"status": status, "response": message})
}

// UnfollowUser godoc
// @Summary      Unfollow an author
// @Tags         follows
// @Produce      json
// @Param        id   path      string  true  "User ID to unfollow"
// @Success      200  {object}  map[string]interface{}
// @Router       /users/{id}/follow [delete]
// @Security     BearerAuth
func (server *Server) UnfollowUser(c *gin.Context) {
	requestorID, ok := httpctx.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	target, err := resolveUserByIdentifier(server.DB, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	// Unfollowing someone you don't follow is a no-op, same as a duplicate
	// follow.
	_, err = (&models.Follow{}).UnfollowUser(server.DB, requestorID, target.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error unfollowing user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": "User unfollowed successfully"})
}

// GetFollowers lists the users following the given author.
func (server *Server) GetFollowers(c *gin.Context) {
	target, err := resolveUserByIdentifier(server.DB, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	followers, err := (&models.Follow{}).FollowersOf(server.DB, target.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching followers"})
		return
	}

	users := make([]responses.AuthorResponse, 0, len(*followers))
	for i := range *followers {
		users = append(users, responses.FromUser(&(*followers)[i]))
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": gin.H{"users": users},
	})
}

// GetFollowing lists the authors the given user follows.
func (server *Server) GetFollowing(c *gin.Context) {
	target, err := resolveUserByIdentifier(server.DB, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	following, err := (&models.Follow{}).FolloweesOf(server.DB, target.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching following"})
		return
	}

	users := make([]responses.AuthorResponse, 0, len(*following))
	for i := range *following {
		users = append(users, responses.FromUser(&(*following)[i]))
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": gin.H{"users": users},
	})
}
