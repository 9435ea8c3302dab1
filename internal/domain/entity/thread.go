package entity

import (
	apperrors "nearbuy/pkg/errors"
)

// ThreadRoles pins down who is who in a conversation thread. It is derived
// once per thread lookup from the post and the thread's first message, so
// every operation compares against the same answer instead of re-deriving
// "the other party" at each call site.
type ThreadRoles struct {
	OwnerID     string
	InitiatorID string
}

// DeriveThreadRoles computes the roles for a thread given its post and first
// message. The initiator is the non-owner party of the first message; in the
// normal flow that is the sender, but the derivation also covers the owner
// having sent first.
func DeriveThreadRoles(post *Post, first *Message) ThreadRoles {
	initiator := first.SenderID
	if initiator == post.UserID {
		initiator = first.ReceiverID
	}
	return ThreadRoles{
		OwnerID:     post.UserID,
		InitiatorID: initiator,
	}
}

// IsParticipant reports whether userID is one of the two thread parties.
func (r ThreadRoles) IsParticipant(userID string) bool {
	return userID == r.OwnerID || userID == r.InitiatorID
}

// Counterparty returns the other party of the thread relative to userID.
// Non-participants have no counterparty.
func (r ThreadRoles) Counterparty(userID string) (string, error) {
	switch userID {
	case r.OwnerID:
		return r.InitiatorID, nil
	case r.InitiatorID:
		return r.OwnerID, nil
	}
	return "", apperrors.Forbidden("You are not a participant in this thread", nil)
}
