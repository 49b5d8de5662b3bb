package models

// TokenTypeBearer is the token type reported to clients.
const TokenTypeBearer = "Bearer"

// AuthResponse is returned by successful password and OAuth2 logins.
type AuthResponse struct {
	Token       string `json:"token"`
	Type        string `json:"type"`
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// NewAuthResponse builds the login response for user.
func NewAuthResponse(token Token, user User) AuthResponse {
	return AuthResponse{
		Token:       token.SignedString,
		Type:        TokenTypeBearer,
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
	}
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// VerifyResponse reports the identity behind a valid token.
type VerifyResponse struct {
	Valid bool   `json:"valid"`
	Email string `json:"email"`
}

// MessageResponse is a plain confirmation payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// UploadResponse points at a stored media file.
type UploadResponse struct {
	URL string `json:"url"`
}

// LikeToggleResponse reports the like state after a toggle.
type LikeToggleResponse struct {
	Liked bool `json:"liked"`
}

// LikeCountResponse carries the number of likes on a post.
type LikeCountResponse struct {
	Count int64 `json:"count"`
}

// VersionResponse carries the running server version.
type VersionResponse struct {
	Version string `json:"version"`
}
