package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Collector is the kind given to every signed up user
const Collector = "Collector"

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserSignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type User struct {
	UserID         string    `json:"userId" db:"user_id"`
	Username       string    `json:"username" db:"username"`
	Email          string    `json:"email" db:"email"`
	HashedPassword string    `json:"-" db:"password_hash"`
	Kind           string    `json:"kind" db:"kind"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

func NewUser(userSignup UserSignupRequest) (User, error) {
	hashedPassword, hashErr := HashPassword(userSignup.Password)
	if hashErr != nil {
		return User{}, hashErr
	}
	now := time.Now()
	return User{
		UserID:         uuid.New().String(),
		Username:       userSignup.Username,
		Email:          userSignup.Email,
		HashedPassword: hashedPassword,
		Kind:           Collector,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

func HashPassword(password string) (string, error) {
	hashedPassword, hashErr := bcrypt.GenerateFromPassword([]byte(password), 8)
	if hashErr != nil {
		return "", fmt.Errorf("error hashing password %v", hashErr)
	}

	return string(hashedPassword), nil
}

// CheckPassword reports whether password matches the stored hash
func (user User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) == nil
}
