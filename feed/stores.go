package feed

import (
	"Chronicle/models"

	"gorm.io/gorm"
)

// GormFollowGraph reads follow edges from the database.
type GormFollowGraph struct {
	DB *gorm.DB
}

func (g *GormFollowGraph) FolloweeIDs(userID uint) ([]uint, error) {
	return (&models.Follow{}).FolloweeIDs(g.DB, userID)
}

// GormPostStore reads posts from the database.
type GormPostStore struct {
	DB *gorm.DB
}

func (s *GormPostStore) PostsByAuthorIDs(authorIDs []uint) ([]models.Post, error) {
	posts, err := (&models.Post{}).FindPostsByAuthorIDs(s.DB, authorIDs)
	if err != nil {
		return nil, err
	}
	return *posts, nil
}

// NewGormAggregator wires the aggregator to database-backed stores.
func NewGormAggregator(db *gorm.DB) *Aggregator {
	return NewAggregator(&GormFollowGraph{DB: db}, &GormPostStore{DB: db})
}
