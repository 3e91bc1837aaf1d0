package entity

import "time"

type Blog struct {
	ID         string    `db:"id"`
	Title      string    `db:"title"`
	Content    string    `db:"content"`
	ImageURL   string    `db:"image_url"`
	CreatorID  string    `db:"creator_id"`
	CategoryID string    `db:"category_id"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// CategoryName is a closed set. The store keeps it as a plain text column;
// validation happens here, on write.
type CategoryName string

const (
	CategoryBusiness   CategoryName = "business"
	CategoryTechnology CategoryName = "technology"
	CategoryFashion    CategoryName = "fashion"
	CategoryTravel     CategoryName = "travel"
	CategoryFood       CategoryName = "food"
	CategoryEducation  CategoryName = "education"
)

func (n CategoryName) Valid() bool {
	switch n {
	case CategoryBusiness, CategoryTechnology, CategoryFashion,
		CategoryTravel, CategoryFood, CategoryEducation:
		return true
	}
	return false
}

func CategoryNames() []CategoryName {
	return []CategoryName{
		CategoryBusiness,
		CategoryTechnology,
		CategoryFashion,
		CategoryTravel,
		CategoryFood,
		CategoryEducation,
	}
}

type Category struct {
	ID        string       `db:"id"`
	Name      CategoryName `db:"name"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
}
