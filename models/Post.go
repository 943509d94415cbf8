package models

import (
	"html"
	"strings"
	"time"

	"github.com/twinj/uuid"
	"gorm.io/gorm"
)

// Post is authored content. The author is fixed at creation; edits may only
// touch the text, the group and the image. Posts are ordered newest first
// everywhere, with the id as tie-break so the order is total.
type Post struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	PublicID  string    `gorm:"type:uuid;uniqueIndex;column:public_id" json:"public_id"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"author"`
	GroupID   *uint     `gorm:"index" json:"group_id"`
	Group     *Group    `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	Content   string    `gorm:"text;not null;" json:"content"`
	ImagePath string    `gorm:"size:255;null;" json:"image_path"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) (err error) {
	if strings.TrimSpace(p.PublicID) == "" {
		p.PublicID = uuid.NewV4().String()
	}
	return nil
}

func (p *Post) Prepare() {
	p.ID = 0
	p.Content = html.EscapeString(strings.TrimSpace(p.Content))
	p.Author = User{}
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
}

func (p *Post) Validate() map[string]string {
	var errorMessages = make(map[string]string)

	if p.Content == "" {
		errorMessages["Required_content"] = "Content is required"
	}
	if p.AuthorID == 0 {
		errorMessages["Required_author"] = "Author is required"
	}
	return errorMessages
}

func (p *Post) SavePost(db *gorm.DB) (*Post, error) {
	err := db.Create(&p).Error
	if err != nil {
		return nil, err
	}
	err = db.Preload("Author").Preload("Group").Take(p, p.ID).Error
	if err != nil {
		return nil, err
	}
	return p, nil
}

// FindAllPosts returns the global index listing, newest first.
func (p *Post) FindAllPosts(db *gorm.DB) (*[]Post, error) {
	posts := []Post{}
	err := db.Preload("Author").Preload("Group").
		Order("created_at desc, id desc").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return &posts, nil
}

func (p *Post) FindPostsByAuthor(db *gorm.DB, uid uint) (*[]Post, error) {
	posts := []Post{}
	err := db.Preload("Author").Preload("Group").
		Where("author_id = ?", uid).
		Order("created_at desc, id desc").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return &posts, nil
}

func (p *Post) FindPostsByGroup(db *gorm.DB, gid uint) (*[]Post, error) {
	posts := []Post{}
	err := db.Preload("Author").Preload("Group").
		Where("group_id = ?", gid).
		Order("created_at desc, id desc").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return &posts, nil
}

// FindPostsByAuthorIDs feeds the aggregator: every post whose author is in
// the given set, newest first. An empty set yields an empty slice.
func (p *Post) FindPostsByAuthorIDs(db *gorm.DB, authorIDs []uint) (*[]Post, error) {
	posts := []Post{}
	if len(authorIDs) == 0 {
		return &posts, nil
	}
	err := db.Preload("Author").Preload("Group").
		Where("author_id IN ?", authorIDs).
		Order("created_at desc, id desc").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return &posts, nil
}

func (p *Post) FindPostByID(db *gorm.DB, pid uint) (*Post, error) {
	var post Post
	err := db.Preload("Author").Preload("Group").Take(&post, pid).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdateAPost edits the mutable fields of a post. The author and the id
// never change.
func (p *Post) UpdateAPost(db *gorm.DB) (*Post, error) {
	err := db.Model(&Post{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"content":    p.Content,
		"group_id":   p.GroupID,
		"image_path": p.ImagePath,
		"updated_at": time.Now(),
	}).Error
	if err != nil {
		return nil, err
	}
	err = db.Preload("Author").Preload("Group").Take(p, p.ID).Error
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Post) DeleteAPost(db *gorm.DB) (int64, error) {
	result := db.Where("id = ?", p.ID).Delete(&Post{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// When a user is deleted, we also delete the posts that the user had
func (p *Post) DeleteUserPosts(db *gorm.DB, uid uint) (int64, error) {
	result := db.Where("author_id = ?", uid).Delete(&Post{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
