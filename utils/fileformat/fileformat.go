package fileformat

import (
	"path"
	"strings"

	"github.com/twinj/uuid"
)

// UniqueFormat turns an uploaded filename into a collision-free object key.
func UniqueFormat(fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	return uuid.NewV4().String() + ext
}
