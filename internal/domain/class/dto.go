package class

type CreateClassRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description" validate:"max=4000"`
	Image       string `json:"image" validate:"omitempty,url"`
}

type ListQuery struct {
	Page   int    `form:"page"`
	Search string `form:"search"`
}
