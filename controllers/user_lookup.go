package controllers

import (
	"strconv"
	"strings"

	"Chronicle/models"

	"gorm.io/gorm"
)

// resolveUserByIdentifier accepts either a numeric id, a public uuid, or a
// username and returns the matching user.
func resolveUserByIdentifier(db *gorm.DB, identifier string) (*models.User, error) {
	identifier = strings.TrimSpace(identifier)

	if uid, err := strconv.ParseUint(identifier, 10, 32); err == nil {
		return (&models.User{}).FindUserByID(db, uint(uid))
	}

	var user models.User
	if err := db.Where("public_id = ?", identifier).Take(&user).Error; err == nil {
		return &user, nil
	}

	return (&models.User{}).FindUserByUsername(db, identifier)
}
