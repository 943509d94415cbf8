package models

import (
	"errors"
	"html"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Group is an optional category a post can be published under.
// A group exists independently of any posts.
type Group struct {
	ID          uint      `gorm:"primary_key;autoIncrement" json:"id"`
	Title       string    `gorm:"size:255;not null;unique" json:"title"`
	Slug        string    `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Description string    `gorm:"text" json:"description"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (g *Group) BeforeCreate(tx *gorm.DB) (err error) {
	if strings.TrimSpace(g.Slug) == "" {
		g.Slug = slug.Make(g.Title)
	}
	return nil
}

func (g *Group) Prepare() {
	g.Title = html.EscapeString(strings.TrimSpace(g.Title))
	g.Description = html.EscapeString(strings.TrimSpace(g.Description))
	g.Slug = strings.TrimSpace(g.Slug)
	g.CreatedAt = time.Now()
	g.UpdatedAt = time.Now()
}

func (g *Group) Validate() map[string]string {
	var errorMessages = make(map[string]string)

	if g.Title == "" {
		errorMessages["Required_title"] = "Title is required"
	}
	if g.Slug != "" && !slug.IsSlug(g.Slug) {
		errorMessages["Invalid_slug"] = "Slug may only contain lowercase letters, numbers and hyphens"
	}
	return errorMessages
}

func (g *Group) SaveGroup(db *gorm.DB) (*Group, error) {
	err := db.Create(&g).Error
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Group) FindAllGroups(db *gorm.DB) (*[]Group, error) {
	groups := []Group{}
	err := db.Order("title asc").Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return &groups, nil
}

func (g *Group) FindGroupBySlug(db *gorm.DB, s string) (*Group, error) {
	var group Group
	err := db.Where("slug = ?", s).Take(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("Group not found")
		}
		return nil, err
	}
	return &group, nil
}
