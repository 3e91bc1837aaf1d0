package entity

import "time"

type User struct {
	ID        string    `db:"id"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	FullName  string    `db:"full_name"`
	AvatarURL string    `db:"avatar_url"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type UserLoginData struct {
	ID       string
	Email    string
	FullName string
}

// Follower counts are stubbed until a real social graph exists.
const (
	StubFollowingCount = 15
	StubFollowerCount  = 80
)
