package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nearbuy/pkg/errors"
)

func TestDeriveThreadRoles(t *testing.T) {
	post := &Post{ID: "p1", UserID: "owner"}

	roles := DeriveThreadRoles(post, &Message{SenderID: "u2", ReceiverID: "owner"})
	assert.Equal(t, "owner", roles.OwnerID)
	assert.Equal(t, "u2", roles.InitiatorID)

	// The derivation holds even if the first stored message was sent by
	// the owner.
	roles = DeriveThreadRoles(post, &Message{SenderID: "owner", ReceiverID: "u2"})
	assert.Equal(t, "owner", roles.OwnerID)
	assert.Equal(t, "u2", roles.InitiatorID)
}

func TestThreadRolesIsParticipant(t *testing.T) {
	roles := ThreadRoles{OwnerID: "owner", InitiatorID: "u2"}

	assert.True(t, roles.IsParticipant("owner"))
	assert.True(t, roles.IsParticipant("u2"))
	assert.False(t, roles.IsParticipant("u3"))
}

func TestThreadRolesCounterparty(t *testing.T) {
	roles := ThreadRoles{OwnerID: "owner", InitiatorID: "u2"}

	other, err := roles.Counterparty("owner")
	require.NoError(t, err)
	assert.Equal(t, "u2", other)

	other, err = roles.Counterparty("u2")
	require.NoError(t, err)
	assert.Equal(t, "owner", other)

	_, err = roles.Counterparty("u3")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}
