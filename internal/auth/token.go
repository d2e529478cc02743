package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const SessionCookie = "session"

// SessionTTL bounds both the JWT expiry and the redis session record.
const SessionTTL = 24 * time.Hour

// GenerateToken creates a session token for a user. The returned jti
// identifies the session record in redis.
func GenerateToken(userID int, secret string) (token string, jti string, err error) {
	jti = uuid.NewString()
	claims := jwt.MapClaims{
		"user_id": userID,
		"jti":     jti,
		"exp":     time.Now().Add(SessionTTL).Unix(),
		"iat":     time.Now().Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err = t.SignedString([]byte(secret))
	return token, jti, err
}

// ParseToken validates a session token and extracts the user ID and jti.
func ParseToken(tokenStr, secret string) (int, string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return 0, "", err
	}

	if !token.Valid {
		return 0, "", jwt.ErrTokenInvalidClaims
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", jwt.ErrTokenMalformed
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, "", jwt.ErrTokenMalformed
	}

	jti, ok := claims["jti"].(string)
	if !ok {
		return 0, "", jwt.ErrTokenMalformed
	}

	return int(userIDFloat), jti, nil
}

// ExtractToken pulls the session token from the cookie or, failing that,
// a bearer Authorization header.
func ExtractToken(r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}

	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}

	parts := strings.Split(auth, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}

	return parts[1]
}
