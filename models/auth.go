package models

// RegisterRequest is the body of a registration call.
type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
}

// LoginRequest carries password credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// OAuth2LoginRequest carries a provider credential: a Google ID token or a
// GitHub access token.
type OAuth2LoginRequest struct {
	Token string `json:"token"`
}

// ResetPasswordRequest is the body of a password reset call.
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}

// ProfileUpdateRequest changes profile fields. Nil fields are left untouched.
type ProfileUpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}
