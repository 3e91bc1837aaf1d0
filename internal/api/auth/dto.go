package auth

type LoginUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginUserResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

type RegisterUserRequest struct {
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=1,max=72"`
	ConfirmationPassword string `json:"confirmation_password" validate:"required,eqfield=Password"`
	FullName             string `json:"full_name" validate:"required,min=1,max=255"`
}

type RegisterUserResponse struct {
	UserID string `json:"user_id"`
}

type UserProfileResponse struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Following int    `json:"following"`
	Follower  int    `json:"follower"`
}
