package auth

import (
	"time"

	"github.com/darshilDishu/academiq/app/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SessionCookie is the name of the signed cookie carrying the session token.
const SessionCookie = "session_token"

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetSessionExpiry() time.Time {
	return time.Now().Add(24 * time.Hour)
}

type SessionClaims struct {
	StudentID int64 `json:"student_id"`
	jwt.RegisteredClaims
}

// GenerateSessionToken signs a session token bound to the student's id.
func GenerateSessionToken(studentID int64) (string, error) {
	claims := SessionClaims{
		StudentID: studentID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(GetSessionExpiry()),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "academiq",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.GetSessionSecret())
}

func ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return config.GetSessionSecret(), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrInvalidKey
}
