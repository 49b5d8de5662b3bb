package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside the identity boundary.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is globally unique and doubles as the token subject.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the password. Never serialized.
	PasswordHash string `json:"-"`

	// PhoneNumber is globally unique when set. OAuth2 users may have none.
	PhoneNumber string `json:"phoneNumber,omitempty"`

	// Provider names the federated identity provider ("google", "github")
	// for accounts linked via OAuth2. Empty for local accounts.
	Provider string `json:"provider,omitempty"`

	// ProviderID is the provider-scoped subject of the linked identity.
	ProviderID string `json:"-"`

	// Enabled users may authenticate.
	Enabled bool `json:"enabled"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// OAuth2Profile is the identity asserted by a federated provider after a
// successful login.
type OAuth2Profile struct {
	// Email is the provider-asserted email address. May be empty when the
	// user keeps it private at the provider.
	Email string
	// Name is the display name reported by the provider.
	Name string
	// Subject is the provider-scoped user identifier ("sub").
	Subject string
}
