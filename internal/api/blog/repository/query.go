package blogRepository

const (
	queryCreateBlog = `
		INSERT INTO blogs (
			id,
			title,
			content,
			image_url,
			creator_id,
			category_id,
			created_at,
			updated_at
		) VALUES (
			:id,
			:title,
			:content,
			:image_url,
			:creator_id,
			:category_id,
			:created_at,
			:updated_at
		)
	`

	queryGetBlogByID = `
		SELECT
			id,
			title,
			content,
			image_url,
			creator_id,
			category_id,
			created_at,
			updated_at
		FROM blogs
		WHERE id = :id
	`

	queryGetAllBlogs = `
		SELECT
			id,
			title,
			content,
			image_url,
			creator_id,
			category_id,
			created_at,
			updated_at
		FROM blogs
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryUpdateBlog = `
		UPDATE blogs
		SET
			title = :title,
			content = :content,
			image_url = :image_url,
			category_id = :category_id,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryGetCategoryByID = `
		SELECT
			id,
			name,
			created_at,
			updated_at
		FROM blog_categories
		WHERE id = :id
	`

	queryGetCategoryByName = `
		SELECT
			id,
			name,
			created_at,
			updated_at
		FROM blog_categories
		WHERE name = :name
	`

	queryGetCategoriesByIDs = `
		SELECT
			id,
			name,
			created_at,
			updated_at
		FROM blog_categories
		WHERE id IN (?)
	`

	queryGetCreatorByID = `
		SELECT
			id,
			email,
			password,
			full_name,
			avatar_url,
			created_at,
			updated_at
		FROM users
		WHERE id = :id
	`

	queryGetCreatorsByIDs = `
		SELECT
			id,
			email,
			password,
			full_name,
			avatar_url,
			created_at,
			updated_at
		FROM users
		WHERE id IN (?)
	`
)
