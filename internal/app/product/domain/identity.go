package domain

import "strings"

// ClientIdentity is the (client id, email) pair an authenticated request carries.
// It is always passed explicitly; nothing in the domain reads it from ambient state.
type ClientIdentity struct {
	ID    string
	Email string
}

// NewClientIdentity trims both parts, lower-cases the email and requires both.
func NewClientIdentity(id, email string) (ClientIdentity, error) {
	who := ClientIdentity{
		ID:    strings.TrimSpace(id),
		Email: normalizeEmail(email),
	}
	if who.ID == "" {
		return ClientIdentity{}, ErrMissingClientID
	}
	if who.Email == "" {
		return ClientIdentity{}, ErrMissingClientEmail
	}
	return who, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
