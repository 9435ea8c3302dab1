package entity

import (
	"time"
)

type PostStatus string

const (
	PostStatusActive    PostStatus = "active"
	PostStatusCompleted PostStatus = "completed"
	PostStatusCancelled PostStatus = "cancelled"
)

type PostType string

const (
	PostTypeRequest      PostType = "request"
	PostTypeOffer        PostType = "offer"
	PostTypeAnnouncement PostType = "announcement"
)

// PostLocation is the location snapshot embedded in a post at creation time.
type PostLocation struct {
	Latitude  float64 `json:"latitude" firestore:"latitude"`
	Longitude float64 `json:"longitude" firestore:"longitude"`
	Address   string  `json:"address,omitempty" firestore:"address,omitempty"`
	City      string  `json:"city,omitempty" firestore:"city,omitempty"`
	Region    string  `json:"region,omitempty" firestore:"region,omitempty"`
	Country   string  `json:"country,omitempty" firestore:"country,omitempty"`
}

type Post struct {
	ID          string     `json:"id" firestore:"id"`
	UserID      string     `json:"user_id" firestore:"userId"`
	LocationID  string     `json:"location_id" firestore:"locationId"`
	Title       string     `json:"title" firestore:"title"`
	Description string     `json:"description,omitempty" firestore:"description,omitempty"`
	Price       *int64     `json:"price,omitempty" firestore:"price,omitempty"`
	ImageURLs   []string   `json:"image_urls,omitempty" firestore:"imageUrls,omitempty"`
	Type        PostType   `json:"type" firestore:"type"`
	Status      PostStatus `json:"status" firestore:"status"`

	// Location is snapshotted from the owner's location when the post is
	// created. It does not follow the owner if they relocate.
	Location PostLocation `json:"location" firestore:"location"`

	// ResponseCount counts thread-initiating messages, incremented
	// atomically in the store.
	ResponseCount int64 `json:"response_count" firestore:"responseCount"`

	CreatedAt time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time  `json:"updated_at" firestore:"updatedAt"`
	DeletedAt *time.Time `json:"-" firestore:"deletedAt,omitempty"`
}

// IsOpen is the single predicate for "this post still accepts replies and
// messages". Completed and cancelled posts are terminal.
func (p *Post) IsOpen() bool {
	return p.Status == PostStatusActive
}

func (p *Post) IsOwnedBy(userID string) bool {
	return p.UserID == userID
}

// postTransitions is the explicit table of allowed status transitions.
// Terminal states have no outgoing edges: a completed or cancelled post
// cannot be reopened.
var postTransitions = map[PostStatus][]PostStatus{
	PostStatusActive: {PostStatusCompleted, PostStatusCancelled},
}

// CanTransitionTo reports whether a post may move from its current status
// to the target status.
func (s PostStatus) CanTransitionTo(target PostStatus) bool {
	for _, allowed := range postTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// ValidPostStatus reports whether the value is a member of the status enum.
func ValidPostStatus(s PostStatus) bool {
	switch s {
	case PostStatusActive, PostStatusCompleted, PostStatusCancelled:
		return true
	}
	return false
}
