package controllers

import (
	"Chronicle/pagination"
	"Chronicle/responses"

	"github.com/gin-gonic/gin"
)

// buildPageResponse shapes one paginated listing window for the client.
func buildPageResponse(page pagination.Page) gin.H {
	return gin.H{
		"items":       responses.FromPosts(page.Items),
		"page":        page.Number,
		"total_pages": page.TotalPages,
		"total_items": page.TotalItems,
		"has_next":    page.HasNext,
		"has_prev":    page.HasPrev,
	}
}
