package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nearbuy/pkg/errors"
)

type fakeVerifier struct {
	uid   string
	phone string
	err   error
}

func (v *fakeVerifier) VerifyToken(ctx context.Context, token string) (string, string, error) {
	return v.uid, v.phone, v.err
}

func TestRegisterCreatesUserOnFirstSession(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo()
	uc := NewAuthUseCase(userRepo, &fakeVerifier{uid: "u1", phone: "+15551234"})

	user, err := uc.Register(ctx, "u1", "+15551234", RegisterInput{Name: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "+15551234", user.Phone)
	assert.Equal(t, "Alice", user.Name)
}

func TestRegisterIsIdempotent(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo()
	uc := NewAuthUseCase(userRepo, &fakeVerifier{uid: "u1", phone: "+15551234"})

	first, err := uc.Register(ctx, "u1", "+15551234", RegisterInput{Name: "Alice"})
	require.NoError(t, err)

	again, err := uc.Register(ctx, "u1", "+15551234", RegisterInput{Name: "Someone Else"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, "Alice", again.Name)
}

func TestRegisterRequiresPhone(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo()
	uc := NewAuthUseCase(userRepo, &fakeVerifier{uid: "u1"})

	_, err := uc.Register(ctx, "u1", "", RegisterInput{Name: "Alice"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}
