// Package dto defines Data Transfer Objects for authentication.
package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoginRequest is the JSON body for the login endpoint.
//
// @Description Request to authenticate a dispatcher
// @Example {"email": "dispatcher@freightco.test", "password": "s3cret-pass"}
type LoginRequest struct {
	// Email of the dispatcher account.
	Email string `json:"email" binding:"required,email" example:"dispatcher@freightco.test"`
	// Password of the dispatcher account.
	Password string `json:"password" binding:"required,min=6" example:"s3cret-pass"`
} // @name LoginRequest

// RegisterRequest is the JSON body for the register endpoint. Depot is
// optional and names the loading site the dispatcher plans for.
//
// @Description Request to register a new dispatcher account
// @Example {"email": "dispatcher@freightco.test", "username": "nfournier", "password": "s3cret-pass", "name": "Nadia Fournier", "depot": "lyon-sud"}
type RegisterRequest struct {
	// Email of the new account.
	Email string `json:"email" binding:"required,email" example:"dispatcher@freightco.test"`
	// Username, unique within the service.
	Username string `json:"username" binding:"required,min=3,max=30" example:"nfournier"`
	// Password, at least 6 characters.
	Password string `json:"password" binding:"required,min=6" example:"s3cret-pass"`
	// Name is the dispatcher's display name (optional).
	Name string `json:"name,omitempty" example:"Nadia Fournier"`
	// Depot is the loading site the account belongs to (optional).
	Depot string `json:"depot,omitempty" example:"lyon-sud"`
} // @name RegisterRequest

// LoginResponse is the JSON body returned on successful login or
// registration.
//
// @Description Authentication response carrying the JWT token pair
type LoginResponse struct {
	// Token is the JWT access token.
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	// RefreshToken is the JWT refresh token.
	RefreshToken string `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	// User describes the authenticated dispatcher.
	User UserResponse `json:"user"`
} // @name LoginResponse

// TokenPair carries the signed access and refresh tokens. It lives in
// dto rather than service so http handlers can reference it without an
// import cycle.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"` // seconds
}

// Claims are the application claims embedded in every issued JWT.
// Depot scopes the token to the dispatcher's loading site.
type Claims struct {
	UserID primitive.ObjectID `json:"user_id"`
	Email  string             `json:"email"`
	Name   string             `json:"name"`
	Depot  string             `json:"depot,omitempty"`
}

// UserResponse describes a dispatcher in API responses.
type UserResponse struct {
	// Email of the dispatcher.
	Email string `json:"email" example:"dispatcher@freightco.test"`
	// Name is the dispatcher's display name.
	Name string `json:"name,omitempty" example:"Nadia Fournier"`
	// Depot is the dispatcher's loading site.
	Depot string `json:"depot,omitempty" example:"lyon-sud"`
} // @name UserResponse

// Validate applies the cross-field rules for login.
func (r *LoginRequest) Validate() error {
	if r.Email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if len(r.Password) < 6 {
		return &ValidationError{Field: "password", Message: "password must be at least 6 characters"}
	}
	return nil
}

// Validate applies the cross-field rules for registration.
func (r *RegisterRequest) Validate() error {
	if r.Email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if r.Username == "" {
		return &ValidationError{Field: "username", Message: "username is required"}
	}
	if len(r.Username) < 3 {
		return &ValidationError{Field: "username", Message: "username must be at least 3 characters"}
	}
	if len(r.Username) > 30 {
		return &ValidationError{Field: "username", Message: "username must be at most 30 characters"}
	}
	if len(r.Password) < 6 {
		return &ValidationError{Field: "password", Message: "password must be at least 6 characters"}
	}
	return nil
}
