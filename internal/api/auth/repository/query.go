package authRepository

const (
	queryCreateUser = `
		INSERT INTO users (
			id,
			email,
			password,
			full_name,
			avatar_url,
			created_at,
			updated_at
		) VALUES (
			:id,
			:email,
			:password,
			:full_name,
			:avatar_url,
			:created_at,
			:updated_at
		)
	`

	queryGetUserByID = `
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

	queryGetUserByEmail = `
		SELECT
			id,
			email,
			password,
			full_name,
			avatar_url,
			created_at,
			updated_at
		FROM users
		WHERE email = :email
	`
)
