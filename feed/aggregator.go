package feed

import (
	"sort"

	"Chronicle/models"
)

// FollowGraph exposes the follow edges the aggregator reads.
type FollowGraph interface {
	FolloweeIDs(userID uint) ([]uint, error)
}

// PostStore exposes the post lookups the aggregator reads.
type PostStore interface {
	PostsByAuthorIDs(authorIDs []uint) ([]models.Post, error)
}

// Aggregator computes a user's feed from the current follow edges and the
// current posts. It holds no state and caches nothing, so a post from a
// freshly-followed author shows up on the very next call.
type Aggregator struct {
	graph FollowGraph
	posts PostStore
}

func NewAggregator(graph FollowGraph, posts PostStore) *Aggregator {
	return &Aggregator{graph: graph, posts: posts}
}

// FeedFor returns every post authored by someone the user follows, newest
// first with the post id as tie-break. A user following nobody gets an empty
// slice, never the global listing.
func (a *Aggregator) FeedFor(userID uint) ([]models.Post, error) {
	authorIDs, err := a.graph.FolloweeIDs(userID)
	if err != nil {
		return nil, err
	}
	if len(authorIDs) == 0 {
		return []models.Post{}, nil
	}

	posts, err := a.posts.PostsByAuthorIDs(authorIDs)
	if err != nil {
		return nil, err
	}

	// The store already orders its result, but the total order is the feed's
	// contract, so it is asserted here rather than assumed.
	sort.SliceStable(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].ID > posts[j].ID
	})
	return posts, nil
}
