package entity

import (
	"time"
)

type ReplyStatus string

const (
	ReplyStatusPending  ReplyStatus = "pending"
	ReplyStatusAccepted ReplyStatus = "accepted"
)

// Reply is a priced counter-offer against a post. At most one reply per
// post ever reaches accepted status.
type Reply struct {
	ID          string      `json:"id" firestore:"id"`
	PostID      string      `json:"post_id" firestore:"postId"`
	UserID      string      `json:"user_id" firestore:"userId"`
	Price       int64       `json:"price" firestore:"price"`
	Description string      `json:"description,omitempty" firestore:"description,omitempty"`
	ImageURLs   []string    `json:"image_urls,omitempty" firestore:"imageUrls,omitempty"`
	Status      ReplyStatus `json:"status" firestore:"status"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
