package controllers

import (
	"strconv"

	"Chronicle/models"
	"Chronicle/pagination"

	"github.com/gin-gonic/gin"
)

// requestedPage reads the 1-indexed ?page= query parameter.
func requestedPage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	return page
}

// paginateRequest windows an ordered post listing by the request's page.
func (server *Server) paginateRequest(c *gin.Context, posts []models.Post) pagination.Page {
	return pagination.Paginate(posts, server.PageSize, requestedPage(c))
}
