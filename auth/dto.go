// This file defines the request and response payloads of the auth endpoints.
package auth

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Name     string `json:"name" example:"Ana"`
	Email    string `json:"email" example:"ana@example.com"`
	Password string `json:"password" example:"strongpassword123"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" example:"ana@example.com"`
	Password string `json:"password" example:"strongpassword123"`
}

// ForgotPasswordRequest carries the email address to send a reset link to.
type ForgotPasswordRequest struct {
	Email string `json:"email" example:"ana@example.com"`
}

// ResetPasswordRequest carries the replacement password; the reset token
// itself travels in the URL path.
type ResetPasswordRequest struct {
	Password string `json:"password" example:"newpassword123"`
}

// PublicUser is the client-facing user view, excluding the password hash and
// the reset token fields.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse is returned on successful registration and login.
type AuthResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// UserResponse wraps the public user view, matching the /me response shape.
type UserResponse struct {
	User PublicUser `json:"user"`
}

// MessageResponse is a generic human-readable confirmation body.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed"`
}
