package blog

import "time"

const (
	LatestCount = 6
	PageSize    = 6
)

type Blog struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	AuthorEmail string    `json:"authorEmail"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	PostDate    time.Time `json:"postDate"`
	Likes       int       `json:"likes"`
	Dislikes    int       `json:"dislikes"`
}

// Summary is the card shown in the latest-posts listing.
type Summary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	PostDate    time.Time `json:"postDate"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
}

func (b Blog) Summary() Summary {
	return Summary{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		PostDate:    b.PostDate,
		Image:       b.Image,
		Description: b.Description,
	}
}

type ForumPage struct {
	Blogs      []Blog `json:"blogs"`
	TotalBlogs int64  `json:"totalBlogs"`
}
