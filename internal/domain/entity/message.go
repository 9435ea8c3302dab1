package entity

import (
	"time"
)

type MessageStatus string

const (
	MessageStatusPending MessageStatus = "pending"
	MessageStatusReplied MessageStatus = "replied"
)

type MessageType string

const (
	MessageTypeText  MessageType = "text"
	MessageTypeImage MessageType = "image"
)

// Message is one entry in a conversation thread about a post. All messages
// sharing a ThreadID reference the same post and the same pair of users.
type Message struct {
	ID         string        `json:"id" firestore:"id"`
	PostID     string        `json:"post_id" firestore:"postId"`
	ThreadID   string        `json:"thread_id" firestore:"threadId"`
	SenderID   string        `json:"sender_id" firestore:"senderId"`
	ReceiverID string        `json:"receiver_id" firestore:"receiverId"`
	Text       string        `json:"text,omitempty" firestore:"text,omitempty"`
	Price      *int64        `json:"price,omitempty" firestore:"price,omitempty"`
	Type       MessageType   `json:"type" firestore:"type"`
	Status     MessageStatus `json:"status" firestore:"status"`

	Meta map[string]interface{} `json:"meta,omitempty" firestore:"meta,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

func (m *Message) Involves(userID string) bool {
	return m.SenderID == userID || m.ReceiverID == userID
}

// ValidMessageType reports whether the value is a member of the type enum.
func ValidMessageType(t MessageType) bool {
	return t == MessageTypeText || t == MessageTypeImage
}
