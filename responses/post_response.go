package responses

import (
	"time"

	"Chronicle/models"
)

type AuthorResponse struct {
	ID         uint   `json:"id"`
	Username   string `json:"username"`
	AvatarPath string `json:"avatar_path,omitempty"`
}

type GroupResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

type PostResponse struct {
	ID        uint           `json:"id"`
	PublicID  string         `json:"public_id"`
	Content   string         `json:"content"`
	ImagePath string         `json:"image_path,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Author    AuthorResponse `json:"author"`
	Group     *GroupResponse `json:"group,omitempty"`
}

type CommentResponse struct {
	ID        uint           `json:"id"`
	PublicID  string         `json:"public_id"`
	PostID    uint           `json:"post_id"`
	Body      string         `json:"body"`
	CreatedAt time.Time      `json:"created_at"`
	Author    AuthorResponse `json:"author"`
}

func FromUser(u *models.User) AuthorResponse {
	return AuthorResponse{
		ID:         u.ID,
		Username:   u.Username,
		AvatarPath: u.AvatarPath,
	}
}

func FromGroup(g *models.Group) *GroupResponse {
	if g == nil {
		return nil
	}
	return &GroupResponse{
		ID:          g.ID,
		Title:       g.Title,
		Slug:        g.Slug,
		Description: g.Description,
	}
}

func FromPost(p *models.Post) PostResponse {
	return PostResponse{
		ID:        p.ID,
		PublicID:  p.PublicID,
		Content:   p.Content,
		ImagePath: p.ImagePath,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		Author:    FromUser(&p.Author),
		Group:     FromGroup(p.Group),
	}
}

func FromPosts(posts []models.Post) []PostResponse {
	out := make([]PostResponse, len(posts))
	for i := range posts {
		out[i] = FromPost(&posts[i])
	}
	return out
}

func FromComment(c *models.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		PublicID:  c.PublicID,
		PostID:    c.PostID,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
		Author:    FromUser(&c.Author),
	}
}

func FromComments(comments []models.Comment) []CommentResponse {
	out := make([]CommentResponse, len(comments))
	for i := range comments {
		out[i] = FromComment(&comments[i])
	}
	return out
}
