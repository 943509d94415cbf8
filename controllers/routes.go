package controllers

import (
	"Chronicle/middlewares"

	"github.com/gin-gonic/gin"
)

func (s *Server) initializeRoutes() {

	s.Router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := s.Router.Group("/api/v1")
	{
		// Users routes
		v1.POST("/login", middlewares.LoginRateLimitMiddleware(), s.Login)
		v1.POST("/users", s.CreateUser)
		v1.GET("/users", s.GetUsers)
		v1.GET("/users/:id", s.GetUser)
		v1.PUT("/users/:id", middlewares.TokenAuthMiddleware(), s.UpdateUser)
		v1.PUT("/users/:id/avatar", middlewares.TokenAuthMiddleware(), s.UpdateAvatar)

		// Profile listing (uncached, always current)
		v1.GET("/users/:id/posts", s.GetUserPosts)

		// Follow routes
		v1.POST("/users/:id/follow", middlewares.TokenAuthMiddleware(), s.FollowUser)
		v1.DELETE("/users/:id/follow", middlewares.TokenAuthMiddleware(), s.UnfollowUser)
		v1.GET("/users/:id/followers", s.GetFollowers)
		v1.GET("/users/:id/following", s.GetFollowing)

		// Global index (the only cached listing)
		v1.GET("/posts", s.GetIndexPage)
		v1.POST("/cache/clear", middlewares.TokenAuthMiddleware(), s.ClearIndexCache)

		// Post routes
		v1.POST("/posts", middlewares.TokenAuthMiddleware(), s.CreatePost)
		v1.GET("/posts/:id", s.GetPost)
		v1.PUT("/posts/:id", middlewares.TokenAuthMiddleware(), s.UpdatePost)
		v1.DELETE("/posts/:id", middlewares.TokenAuthMiddleware(), s.DeletePost)
		v1.PUT("/posts/:id/image", middlewares.TokenAuthMiddleware(), s.UpdatePostImage)

		// Comments routes
		v1.POST("/posts/:id/comments", middlewares.TokenAuthMiddleware(), s.CreateComment)
		v1.GET("/posts/:id/comments", s.GetComments)

		// Group routes (uncached)
		v1.GET("/groups", s.GetGroups)
		v1.POST("/groups", middlewares.TokenAuthMiddleware(), s.CreateGroup)
		v1.GET("/groups/:slug", s.GetGroup)
		v1.GET("/groups/:slug/posts", s.GetGroupPosts)

		// Per-user feed (authenticated, never cached)
		v1.GET("/feed", middlewares.TokenAuthMiddleware(), s.GetFeed)
	}
}
