package helper

import (
	"errors"
	"os"
	"time"

	"room_manager/model"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func generateToken(claim model.TokenClaim, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": claim.UserId,
		"email":  claim.Email,
		"name":   claim.Name,
		"exp":    time.Now().Add(ttl).Unix(),
	})
	return token.SignedString(jwtSecret())
}

func GenerateAccessToken(claim model.TokenClaim) (string, error) {
	return generateToken(claim, 24*time.Hour)
}

func GenerateRefreshToken(claim model.TokenClaim) (string, error) {
	return generateToken(claim, 7*24*time.Hour)
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})
}

// ClaimFromToken rebuilds the typed claim from a parsed token's payload.
func ClaimFromToken(token *jwt.Token) (model.TokenClaim, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, errors.New("invalid token claims")
	}
	userId, ok := claims["userId"].(float64)
	if !ok {
		return model.TokenClaim{}, errors.New("invalid userId in payload")
	}
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	return model.TokenClaim{UserId: uint(userId), Email: email, Name: name}, nil
}
