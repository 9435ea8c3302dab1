package entity

import (
	"time"
)

type User struct {
	ID        string `json:"id" firestore:"id"`
	Phone     string `json:"phone" firestore:"phone"`
	Name      string `json:"name" firestore:"name"`
	About     string `json:"about,omitempty" firestore:"about,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty" firestore:"avatarURL,omitempty"`

	CreatedAt time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time  `json:"updated_at" firestore:"updatedAt"`
	DeletedAt *time.Time `json:"-" firestore:"deletedAt,omitempty"`
}

// UserProfile is the subset of user fields shown to other users, e.g. next
// to a post in nearby search results.
type UserProfile struct {
	ID        string `json:"id" firestore:"id"`
	Name      string `json:"name" firestore:"name"`
	AvatarURL string `json:"avatar_url,omitempty" firestore:"avatarURL,omitempty"`
}

func (u *User) PublicProfile() *UserProfile {
	return &UserProfile{
		ID:        u.ID,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
	}
}
