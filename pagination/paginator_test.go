package pagination

import (
	"fmt"
	"testing"
	"time"

	"Chronicle/models"

	"github.com/stretchr/testify/assert"
)

func makePosts(n int) []models.Post {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	posts := make([]models.Post, n)
	for i := 0; i < n; i++ {
		posts[i] = models.Post{
			ID:        uint(n - i),
			Content:   fmt.Sprintf("post %d", n-i),
			CreatedAt: base.Add(time.Duration(n-i) * time.Minute),
		}
	}
	return posts
}

func TestPaginateFullAndPartialPages(t *testing.T) {
	posts := makePosts(11)

	page1 := Paginate(posts, 10, 1)
	assert.Len(t, page1.Items, 10)
	assert.Equal(t, 2, page1.TotalPages)
	assert.Equal(t, 11, page1.TotalItems)
	assert.True(t, page1.HasNext)
	assert.False(t, page1.HasPrev)

	page2 := Paginate(posts, 10, 2)
	assert.Len(t, page2.Items, 1)
	assert.False(t, page2.HasNext)
	assert.True(t, page2.HasPrev)

	page3 := Paginate(posts, 10, 3)
	assert.Len(t, page3.Items, 0)
	assert.False(t, page3.HasNext)
}

func TestPaginatePageCountIsCeiling(t *testing.T) {
	cases := []struct {
		n, pageSize, totalPages, lastLen int
	}{
		{0, 10, 0, 0},
		{1, 10, 1, 1},
		{10, 10, 1, 10},
		{11, 10, 2, 1},
		{20, 10, 2, 10},
		{25, 10, 3, 5},
		{7, 3, 3, 1},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("n=%d size=%d", tc.n, tc.pageSize), func(t *testing.T) {
			posts := makePosts(tc.n)
			page := Paginate(posts, tc.pageSize, 1)
			assert.Equal(t, tc.totalPages, page.TotalPages)

			if tc.totalPages > 0 {
				last := Paginate(posts, tc.pageSize, tc.totalPages)
				assert.Len(t, last.Items, tc.lastLen)
			}
		})
	}
}

func TestPaginateDoesNotReorder(t *testing.T) {
	posts := makePosts(25)

	var collected []uint
	for p := 1; p <= 3; p++ {
		page := Paginate(posts, 10, p)
		for _, post := range page.Items {
			collected = append(collected, post.ID)
		}
	}

	assert.Len(t, collected, 25)
	for i, post := range posts {
		assert.Equal(t, post.ID, collected[i])
	}
}

func TestPaginateBeyondLastPageIsEmptyNotError(t *testing.T) {
	posts := makePosts(5)
	page := Paginate(posts, 10, 99)
	assert.Empty(t, page.Items)
	assert.Equal(t, 99, page.Number)
	assert.Equal(t, 1, page.TotalPages)
}

func TestPaginateDefendsAgainstBadInput(t *testing.T) {
	posts := makePosts(5)

	page := Paginate(posts, 0, 0)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.Number)

	empty := Paginate(nil, 10, 1)
	assert.Empty(t, empty.Items)
	assert.Equal(t, 0, empty.TotalPages)
}
