package auth

import (
	"context"
	"fmt"

	fbauth "firebase.google.com/go/v4/auth"
)

// FirebaseVerifier validates Firebase ID tokens through the Admin SDK.
type FirebaseVerifier struct {
	client *fbauth.Client
}

func NewFirebaseVerifier(client *fbauth.Client) *FirebaseVerifier {
	return &FirebaseVerifier{client: client}
}

func (v *FirebaseVerifier) Verify(ctx context.Context, tokenString string) (Identity, error) {
	decoded, err := v.client.VerifyIDToken(ctx, tokenString)
	if err != nil {
		return Identity{}, fmt.Errorf("invalid token: %w", err)
	}
	email, _ := decoded.Claims["email"].(string)
	return Identity{UID: decoded.UID, Email: email}, nil
}
