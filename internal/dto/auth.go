package dto

// RegisterRequest represents a new account registration. Each
// registration creates a fresh organization owned by the user.
type RegisterRequest struct {
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=6,max=72"`
	Name             string `json:"name" binding:"required,min=2,max=255"`
	OrganizationName string `json:"organization_name" binding:"required,min=2,max=255"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserInfo represents the user data returned after authentication
type UserInfo struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Organization string `json:"organization"`
}

// AuthResponse is returned from both register and login
type AuthResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}
