package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"Chronicle/models"
	"Chronicle/responses"
	"Chronicle/utils/fileformat"
	"Chronicle/utils/formaterror"
	httpctx "Chronicle/utils/httpctx"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreatePost publishes a new post by the authenticated user. The post shows
// up in followers' feeds on their next read; the cached index may lag until
// expiry or an explicit clear.
func (server *Server) CreatePost(c *gin.Context) {
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

	post := models.Post{}
	err = json.Unmarshal(body, &post)
	if err != nil {
		errList["Unmarshal_error"] = "Cannot unmarshal body"
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errList,
		})
		return
	}

	uid, ok := httpctx.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status": http.StatusUnauthorized,
			"error":  "Unauthorized",
		})
		return
	}

	post.Prepare()
	post.AuthorID = uid
	errorMessages := post.Validate()
	if len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errorMessages,
		})
		return
	}

	if post.GroupID != nil {
		if err := server.DB.Select("id").First(&models.Group{}, *post.GroupID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"status": http.StatusNotFound,
				"error":  "Group not found",
			})
			return
		}
	}

	postCreated, err := post.SavePost(server.DB)
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
		"response": responses.FromPost(postCreated),
	})
}

// GetPost is the post detail view: the post plus its comments. Never cached.
func (server *Server) GetPost(c *gin.Context) {
	pid, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusBadRequest,
			"error":  "Invalid post id",
		})
		return
	}

	post, err := (&models.Post{}).FindPostByID(server.DB, uint(pid))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status": http.StatusNotFound,
				"error":  "Post not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Error fetching post",
		})
		return
	}

	comments, err := (&models.Comment{}).GetComments(server.DB, post.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Error fetching comments",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"response": gin.H{
			"post":     responses.FromPost(post),
			"comments": responses.FromComments(*comments),
		},
	})
}

// UpdatePost edits a post's content, group or image. Only the author may
// edit; the author and id never change.
func (server *Server) UpdatePost(c *gin.Context) {
	pid, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusBadRequest,
			"error":  "Invalid post id",
		})
		return
	}

	uid, ok := httpctx.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status": http.StatusUnauthorized,
			"error":  "Unauthorized",
		})
		return
	}

	existing, err := (&models.Post{}).FindPostByID(server.DB, uint(pid))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status": http.StatusNotFound,
				"error":  "Post not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Error fetching post",
		})
		return
	}

	if existing.AuthorID != uid {
		c.JSON(http.StatusForbidden, gin.H{
			"status": http.StatusForbidden,
			"error":  "Only the author can edit a post",
		})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  "Unable to get request",
		})
		return
	}

	update := models.Post{}
	err = json.Unmarshal(body, &update)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  "Cannot unmarshal body",
		})
		return
	}

	update.Prepare()
	update.ID = existing.ID
	update.AuthorID = existing.AuthorID
	if update.ImagePath == "" {
		update.ImagePath = existing.ImagePath
	}
	errorMessages := update.Validate()
	if len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errorMessages,
		})
		return
	}

	if update.GroupID != nil {
		if err := server.DB.Select("id").First(&models.Group{}, *update.GroupID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"status": http.StatusNotFound,
				"error":  "Group not found",
			})
			return
		}
	}

	updatedPost, err := update.UpdateAPost(server.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Error updating post",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": responses.FromPost(updatedPost),
	})
}

// DeletePost removes a post and its comments. Only the author may delete.
func (server *Server) DeletePost(c *gin.Context) {
	pid, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusBadRequest,
			"error":  "Invalid post id",
		})
		return
	}

	uid, ok := httpctx.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status": http.StatusUnauthorized,
			"error":  "Unauthorized",
		})
		return
	}

	post, err := (&models.Post{}).FindPostByID(server.DB, uint(pid))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status": http.StatusNotFound,
				"error":  "Post not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Error fetching post",
		})
		return
	}

	if post.AuthorID != uid {
		c.JSON(http.StatusForbidden, gin.H{
			"status": http.StatusForbidden,
			"error":  "Only the author can delete a post",
		})
		return
	}

	if _, err := post.DeleteAPost(server.DB); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Error deleting post",
		})
		return
	}
	if _, err := (&models.Comment{}).DeletePostComments(server.DB, post.ID); err != nil {
		log.Printf("deleting comments of post %d: %v", post.ID, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": "Post deleted",
	})
}

// UpdatePostImage attaches an image to a post, stored in S3.
func (server *Server) UpdatePostImage(c *gin.Context) {
	pid, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post id"})
		return
	}

	uid, ok := httpctx.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	post, err := (&models.Post{}).FindPostByID(server.DB, uint(pid))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if post.AuthorID != uid {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the author can attach an image"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	buf, fileType, apiErr := readImageUpload(file)
	if apiErr != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": apiErr})
		return
	}

	key := "posts/" + fileformat.UniqueFormat(file.Filename)
	if err := uploadToS3(key, buf, fileType); err != nil {
		log.Printf("S3 upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	post.ImagePath = key
	updatedPost, err := post.UpdateAPost(server.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot save image, please try again later"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": responses.FromPost(updatedPost),
	})
}
