// Package auth implements the credential primitives of the server: bcrypt
// password hashing and HS256 access tokens.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/akels/taskdeck/internal/common"
)

// Identity is the minimal authenticated projection attached to a request
// after a token passes verification. It lives only for the request.
type Identity struct {
	UserID int64
	Email  string
}

// Claims extends the registered JWT claims with the user id and email.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"uid"`
	Email  string `json:"email"`
}

// GenerateToken mints a signed access token for the given user. The expiry
// is issued-at plus validityDuration.
func GenerateToken(userID int64, email string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: userID,
		Email:  email,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// VerifyToken parses and validates a token and returns the identity it
// carries. Every failure mode (bad signature, expired, malformed) collapses
// into common.ErrorUnauthorized so callers cannot tell them apart.
func VerifyToken(tokenString string, secretKey []byte) (*Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	if !token.Valid {
		return nil, common.ErrorUnauthorized
	}

	return &Identity{UserID: claims.UserID, Email: claims.Email}, nil
}
