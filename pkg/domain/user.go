package domain

// UserID identifies a user within the identity provider.
// It is the provider assigned uid, kept as an opaque string.
type UserID string

// User is the account view returned by the authentication wrapper.
type User struct {
	// UID is the identity provider's identifier for the account.
	UID UserID `json:"uid"`
	// Email is the address the account is registered with.
	Email string `json:"email"`
}
