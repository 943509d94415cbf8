package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrSelfFollow is returned when a user attempts to follow themselves.
var ErrSelfFollow = errors.New("models: cannot follow yourself")

// Follow is a directed edge from the follower to the followed author.
// The (follower_id, followed_id) pair is the identity of the edge and is
// enforced unique at the database level.
type Follow struct {
	ID         uint      `gorm:"primary_key;autoIncrement" json:"id"`
	FollowerID uint      `gorm:"not null;index;uniqueIndex:idx_follows_unique;index:idx_follows_follower_created,priority:1" json:"follower_id"`
	FollowedID uint      `gorm:"not null;index;uniqueIndex:idx_follows_unique;index:idx_follows_followed_created,priority:1" json:"followed_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index:idx_follows_followed_created,priority:2;index:idx_follows_follower_created,priority:2" json:"created_at"`
}

// FollowUser creates the edge (follower, followed). It reports whether a new
// edge was created; an already-existing edge is a successful no-op. The
// insert is a single conditional insert so concurrent calls for the same
// pair cannot produce duplicate rows.
func (f *Follow) FollowUser(db *gorm.DB, followerID, followedID uint) (bool, error) {
	if followerID == followedID {
		return false, ErrSelfFollow
	}

	created := false
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&User{}, followedID).Error; err != nil {
			return err
		}

		follow := Follow{
			FollowerID: followerID,
			FollowedID: followedID,
		}
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&follow)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		created = true

		if err := tx.Model(&User{}).
			Where("id = ?", followerID).
			UpdateColumn("following_count", gorm.Expr("following_count + 1")).Error; err != nil {
			return err
		}
		if err := tx.Model(&User{}).
			Where("id = ?", followedID).
			UpdateColumn("followers_count", gorm.Expr("followers_count + 1")).Error; err != nil {
			return err
		}
		return nil
	})
	return created, err
}

// UnfollowUser deletes the edge if present. A missing edge is not an error.
func (f *Follow) UnfollowUser(db *gorm.DB, followerID, followedID uint) (bool, error) {
	removed := false
	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("follower_id = ? AND followed_id = ?", followerID, followedID).
			Delete(&Follow{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		removed = true

		// Counters only move when an edge actually existed, so they never
		// drop below zero.
		if err := tx.Model(&User{}).
			Where("id = ?", followerID).
			UpdateColumn("following_count", gorm.Expr("following_count - 1")).Error; err != nil {
			return err
		}
		if err := tx.Model(&User{}).
			Where("id = ?", followedID).
			UpdateColumn("followers_count", gorm.Expr("followers_count - 1")).Error; err != nil {
			return err
		}
		return nil
	})
	return removed, err
}

func (f *Follow) IsFollowing(db *gorm.DB, followerID, followedID uint) (bool, error) {
	var count int64
	err := db.Model(&Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FollowersOf returns the users following the given author.
func (f *Follow) FollowersOf(db *gorm.DB, authorID uint) (*[]User, error) {
	users := []User{}
	err := db.Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.followed_id = ?", authorID).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return &users, nil
}

// FolloweesOf returns the authors the given user follows.
func (f *Follow) FolloweesOf(db *gorm.DB, userID uint) (*[]User, error) {
	users := []User{}
	err := db.Joins("JOIN follows ON follows.followed_id = users.id").
		Where("follows.follower_id = ?", userID).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return &users, nil
}

// FolloweeIDs returns just the ids of the authors the user follows.
func (f *Follow) FolloweeIDs(db *gorm.DB, userID uint) ([]uint, error) {
	var ids []uint
	err := db.Model(&Follow{}).
		Where("follower_id = ?", userID).
		Pluck("followed_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
