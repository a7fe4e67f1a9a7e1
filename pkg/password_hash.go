package pkg

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultHashCost is slow on purpose, the app token is hashed once and checked rarely (results are cached).
const DefaultHashCost = 14

func HashPassword(password string) (string, error) {
	return HashPasswordWithCost(password, DefaultHashCost)
}

func HashPasswordWithCost(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return "", fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return BytesToString(bytes), nil
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
