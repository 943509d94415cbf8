package pagination

import "Chronicle/models"

// Page is one fixed-size window over an ordered post listing.
type Page struct {
	Items      []models.Post `json:"items"`
	Number     int           `json:"page"`
	TotalPages int           `json:"total_pages"`
	TotalItems int           `json:"total_items"`
	HasNext    bool          `json:"has_next"`
	HasPrev    bool          `json:"has_prev"`
}

// Paginate slices an already-ordered sequence of posts into the 1-indexed
// page of the given size. It never reorders its input. A page past the end
// comes back with empty items, not an error.
func Paginate(posts []models.Post, pageSize, pageNumber int) Page {
	if pageSize < 1 {
		pageSize = 1
	}
	if pageNumber < 1 {
		pageNumber = 1
	}

	total := len(posts)
	totalPages := (total + pageSize - 1) / pageSize

	start := (pageNumber - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Items:      posts[start:end],
		Number:     pageNumber,
		TotalPages: totalPages,
		TotalItems: total,
		HasNext:    pageNumber < totalPages,
		HasPrev:    pageNumber > 1 && totalPages > 0,
	}
}
