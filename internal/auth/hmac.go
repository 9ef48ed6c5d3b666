package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// HMACVerifier validates HS256-family JWTs signed with a shared secret.
// It is the self-hosted alternative to Firebase: the user id comes from the
// "sub" claim, the optional email from the "email" claim.
type HMACVerifier struct {
	secret []byte
}

func NewHMACVerifier(secret string) *HMACVerifier {
	return &HMACVerifier{secret: []byte(secret)}
}

func (v *HMACVerifier) Verify(ctx context.Context, tokenString string) (Identity, error) {
	if len(v.secret) == 0 {
		return Identity{}, errors.New("server is not configured to validate JWTs")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure the signing method is HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, errors.New("could not parse token claims")
	}
	uid, ok := claims["sub"].(string)
	if !ok || uid == "" {
		return Identity{}, errors.New("user ID (sub) claim is missing or invalid")
	}
	email, _ := claims["email"].(string)

	return Identity{UID: uid, Email: email}, nil
}
