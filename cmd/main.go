package main

import (
	api "Chronicle"
)

// @title Chronicle API
// @version 1.0
// @description API for posts, groups, comments, follows and feeds
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Provide a valid JWT as: Bearer <token>
func main() {
	api.Run()
}
