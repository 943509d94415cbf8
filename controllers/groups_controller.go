package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"Chronicle/models"
	"Chronicle/responses"
	"Chronicle/utils/formaterror"

	"github.com/gin-gonic/gin"
)

// CreateGroup creates a category posts can be published under. Groups exist
// independently of posts.
func (server *Server) CreateGroup(c *gin.Context) {
	errList := map[string]string{}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		errList["Invalid_body"] = "Unable to get request"
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errList,
		})
		return
	}

	group := models.Group{}
	err = json.Unmarshal(body, &group)
	if err != nil {
		errList["Unmarshal_error"] = "Cannot unmarshal body"
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errList,
		})
		return
	}

	group.Prepare()
	errorMessages := group.Validate()
	if len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errorMessages,
		})
		return
	}

	groupCreated, err := group.SaveGroup(server.DB)
	if err != nil {
		formattedError := formaterror.FormatError(err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  formattedError,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":   http.StatusCreated,
		"response": groupCreated,
	})
}

// GetGroups lists all groups.
func (server *Server) GetGroups(c *gin.Context) {
	groups, err := (&models.Group{}).FindAllGroups(server.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Error fetching groups",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": groups,
	})
}

// GetGroup returns one group by slug.
func (server *Server) GetGroup(c *gin.Context) {
	group, err := (&models.Group{}).FindGroupBySlug(server.DB, c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status": http.StatusNotFound,
			"error":  "Group not found",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": group,
	})
}

// GetGroupPosts is the group listing: the group's posts, newest first,
// paginated. It is never cached and always reflects the current store.
func (server *Server) GetGroupPosts(c *gin.Context) {
	group, err := (&models.Group{}).FindGroupBySlug(server.DB, c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status": http.StatusNotFound,
			"error":  "Group not found",
		})
		return
	}

	posts, err := (&models.Post{}).FindPostsByGroup(server.DB, group.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Error fetching posts",
		})
		return
	}

	page := server.paginateRequest(c, *posts)
	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"response": gin.H{
			"group": responses.FromGroup(group),
			"posts": buildPageResponse(page),
		},
	})
}
