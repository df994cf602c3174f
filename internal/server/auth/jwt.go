// Package auth implements the two credential primitives of the server:
// password hashing/verification and the signed stateless access token.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/miniter/internal/common"
)

// Claims is the access-token payload: the standard registered claims plus
// the authenticated user id. The HS256 signature covers the whole payload,
// so expiry cannot be stripped without invalidating the token.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64
}

// GenerateToken mints a signed access token binding userID to the expiry
// now+ttl. The clock is supplied by the caller so tests can use fixed times.
func GenerateToken(userID int64, secretKey []byte, ttl time.Duration, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and the expiry of tokenString against
// the caller-supplied now, and returns the embedded user id.
//
// Failure modes are distinct sentinels: common.ErrMalformedToken,
// common.ErrInvalidSignature, common.ErrTokenExpired.
func ParseToken(tokenString string, secretKey []byte, now time.Time) (int64, error) {
	claims := &Claims{}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)

	token, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return 0, common.ErrMalformedToken
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, common.ErrTokenExpired
		default:
			return 0, common.ErrInvalidSignature
		}
	}

	if !token.Valid {
		return 0, common.ErrInvalidSignature
	}

	return claims.UserID, nil
}
