package constants

import "time"

const (
	// ContextKeyUserID is the gin context key holding the authenticated user's ID.
	ContextKeyUserID = "user_id"
	// ContextKeyUserEmail is the gin context key holding the authenticated user's email.
	ContextKeyUserEmail = "user_email"

	// MinPasswordLength is the minimum accepted password length on registration.
	MinPasswordLength = 8

	// BcryptCost is the work factor for password hashing.
	BcryptCost = 10

	// DefaultTokenTTL is used when JWT_EXPIRES_IN is unset or unparsable.
	DefaultTokenTTL = 24 * time.Hour
)
