package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

// AuthClient wraps the Firebase Admin auth client as the identity verifier
// collaborator. OTP delivery and verification happen between the client app
// and Firebase; the backend only ever sees verified ID tokens.
type AuthClient struct {
	client *auth.Client
}

func NewAuthClient(client *auth.Client) *AuthClient {
	return &AuthClient{
		client: client,
	}
}

// VerifyToken verifies a bearer ID token and returns the uid and the phone
// number claim the token was issued for.
func (f *AuthClient) VerifyToken(ctx context.Context, token string) (string, string, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", "", err
	}

	phone := ""
	if v, ok := result.Claims["phone_number"].(string); ok {
		phone = v
	}

	return result.UID, phone, nil
}
