package models

import "github.com/golang-jwt/jwt/v5"

// RegisterRequest holds the registration payload. The capitalised JSON keys
// match the contract the existing clients send.
type RegisterRequest struct {
	FullName string `json:"Fullname" validate:"required"`
	Username string `json:"Username" validate:"required"`
	Email    string `json:"Email" validate:"required,email"`
	Password string `json:"Password" validate:"required,min=6"`
}

// LoginRequest holds credentials for authenticating a user.
type LoginRequest struct {
	Email    string `json:"Email" validate:"required,email"`
	Password string `json:"Password" validate:"required"`
}

// LoginResponse returns the issued session token.
type LoginResponse struct {
	Token string `json:"token"`
}

// JWTClaims represents the JWT payload for session tokens.
type JWTClaims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}
