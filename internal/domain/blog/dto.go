package blog

import "time"

type CreateBlogRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Author      string     `json:"author" validate:"max=120"`
	Image       string     `json:"image" validate:"omitempty,url"`
	Description string     `json:"description" validate:"max=1000"`
	Content     string     `json:"content"`
	PostDate    *time.Time `json:"postDate"`
}

type ForumQuery struct {
	Page int `form:"page"`
}
