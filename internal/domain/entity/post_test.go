package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostStatusTransitions(t *testing.T) {
	assert.True(t, PostStatusActive.CanTransitionTo(PostStatusCompleted))
	assert.True(t, PostStatusActive.CanTransitionTo(PostStatusCancelled))

	// Terminal states have no outgoing transitions.
	assert.False(t, PostStatusActive.CanTransitionTo(PostStatusActive))
	assert.False(t, PostStatusCompleted.CanTransitionTo(PostStatusActive))
	assert.False(t, PostStatusCompleted.CanTransitionTo(PostStatusCancelled))
	assert.False(t, PostStatusCancelled.CanTransitionTo(PostStatusActive))
	assert.False(t, PostStatusCancelled.CanTransitionTo(PostStatusCompleted))
}

func TestValidPostStatus(t *testing.T) {
	assert.True(t, ValidPostStatus(PostStatusActive))
	assert.True(t, ValidPostStatus(PostStatusCompleted))
	assert.True(t, ValidPostStatus(PostStatusCancelled))
	assert.False(t, ValidPostStatus("archived"))
	assert.False(t, ValidPostStatus(""))
}

func TestPostIsOpen(t *testing.T) {
	assert.True(t, (&Post{Status: PostStatusActive}).IsOpen())
	assert.False(t, (&Post{Status: PostStatusCompleted}).IsOpen())
	assert.False(t, (&Post{Status: PostStatusCancelled}).IsOpen())
}
