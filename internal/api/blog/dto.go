package blogs

import "time"

// UpsertBlogRequest is shared by create and update. Update is a full
// replace: all four fields are overwritten unconditionally.
type UpsertBlogRequest struct {
	Title    string `json:"title" validate:"required,min=3,max=256"`
	Content  string `json:"content" validate:"required"`
	ImageURL string `json:"image_url" validate:"required"`
	Category string `json:"category" validate:"required"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreatorResponse struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Following int    `json:"following"`
	Follower  int    `json:"follower"`
}

type BlogResponse struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Content   string           `json:"content"`
	ImageURL  string           `json:"image_url"`
	Category  CategoryResponse `json:"category"`
	Creator   CreatorResponse  `json:"creator"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
