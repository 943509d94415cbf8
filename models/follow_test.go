package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupFollowDB(t *testing.T) (*gorm.DB, User, User) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to in-memory database: %v", err)
	}
	err = db.AutoMigrate(&User{}, &Follow{})
	assert.NoError(t, err)

	alice := User{Username: "alice", Email: "alice@example.com", Password: "password"}
	bob := User{Username: "bob", Email: "bob@example.com", Password: "password"}
	assert.NoError(t, db.Create(&alice).Error)
	assert.NoError(t, db.Create(&bob).Error)
	return db, alice, bob
}

func TestSelfFollowIsRejected(t *testing.T) {
	db, alice, _ := setupFollowDB(t)

	created, err := (&Follow{}).FollowUser(db, alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrSelfFollow)
	assert.False(t, created)

	var count int64
	db.Model(&Follow{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestDuplicateFollowIsIdempotent(t *testing.T) {
	db, alice, bob := setupFollowDB(t)

	created, err := (&Follow{}).FollowUser(db, bob.ID, alice.ID)
	assert.NoError(t, err)
	assert.True(t, created)

	// Second call succeeds but creates nothing.
	created, err = (&Follow{}).FollowUser(db, bob.ID, alice.ID)
	assert.NoError(t, err)
	assert.False(t, created)

	var count int64
	db.Model(&Follow{}).Count(&count)
	assert.Equal(t, int64(1), count)

	// The counters only moved once.
	var followed User
	assert.NoError(t, db.Take(&followed, alice.ID).Error)
	assert.Equal(t, int64(1), followed.FollowersCount)

	var follower User
	assert.NoError(t, db.Take(&follower, bob.ID).Error)
	assert.Equal(t, int64(1), follower.FollowingCount)
}

func TestFollowUnknownUserFails(t *testing.T) {
	db, _, bob := setupFollowDB(t)

	created, err := (&Follow{}).FollowUser(db, bob.ID, 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.False(t, created)
}

func TestUnfollowThenRefollowRecreatesEdge(t *testing.T) {
	db, alice, bob := setupFollowDB(t)

	created, err := (&Follow{}).FollowUser(db, bob.ID, alice.ID)
	assert.NoError(t, err)
	assert.True(t, created)

	removed, err := (&Follow{}).UnfollowUser(db, bob.ID, alice.ID)
	assert.NoError(t, err)
	assert.True(t, removed)

	following, err := (&Follow{}).IsFollowing(db, bob.ID, alice.ID)
	assert.NoError(t, err)
	assert.False(t, following)

	created, err = (&Follow{}).FollowUser(db, bob.ID, alice.ID)
	assert.NoError(t, err)
	assert.True(t, created)

	following, err = (&Follow{}).IsFollowing(db, bob.ID, alice.ID)
	assert.NoError(t, err)
	assert.True(t, following)

	var count int64
	db.Model(&Follow{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUnfollowAbsentEdgeIsNoOp(t *testing.T) {
	db, alice, bob := setupFollowDB(t)

	removed, err := (&Follow{}).UnfollowUser(db, bob.ID, alice.ID)
	assert.NoError(t, err)
	assert.False(t, removed)

	// Counters untouched.
	var followed User
	assert.NoError(t, db.Take(&followed, alice.ID).Error)
	assert.Equal(t, int64(0), followed.FollowersCount)
}

func TestFollowersAndFolloweesAreDirected(t *testing.T) {
	db, alice, bob := setupFollowDB(t)
	carol := User{Username: "carol", Email: "carol@example.com", Password: "password"}
	assert.NoError(t, db.Create(&carol).Error)

	_, err := (&Follow{}).FollowUser(db, bob.ID, alice.ID)
	assert.NoError(t, err)
	_, err = (&Follow{}).FollowUser(db, carol.ID, alice.ID)
	assert.NoError(t, err)

	followers, err := (&Follow{}).FollowersOf(db, alice.ID)
	assert.NoError(t, err)
	assert.Len(t, *followers, 2)

	// Following is not symmetric: alice follows nobody.
	followees, err := (&Follow{}).FolloweesOf(db, alice.ID)
	assert.NoError(t, err)
	assert.Len(t, *followees, 0)

	ids, err := (&Follow{}).FolloweeIDs(db, bob.ID)
	assert.NoError(t, err)
	assert.Equal(t, []uint{alice.ID}, ids)
}
