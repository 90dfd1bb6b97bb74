// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
// It carries the identity information shared across all roles; role-specific data
// lives in the optional profiles.
type User struct {
	ID              uuid.UUID        // The unique identifier for the user.
	Email           string           // The user's primary contact address, also the login identifier.
	Name            string           // The user's display name.
	PasswordHash    string           // The bcrypt hash of the login password. Only the auth flow reads this.
	IsAdmin         bool             // Elevated privileges over category lifecycle and role assignment.
	UserProfile     *UserProfile     // Customer-specific data. Nil if this person has no 'user' role.
	MerchantProfile *MerchantProfile // Merchant-specific data. Nil if this person has no 'merchant' role.
	CreatedAt       time.Time        // Timestamp of when this account was created.
	UpdatedAt       time.Time        // Timestamp of the last modification.
}

// Roles derives the caller's role claims from profile presence and the admin flag.
// These claims are embedded in access tokens and checked by pure predicates,
// never by the persistence layer.
func (u *User) Roles() Roles {
	roles := make(Roles, 0, 3)
	if u.UserProfile != nil {
		roles = append(roles, RoleUser)
	}
	if u.MerchantProfile != nil {
		roles = append(roles, RoleMerchant)
	}
	if u.IsAdmin {
		roles = append(roles, RoleAdmin)
	}

	return roles
}

// UserProfile holds data specific to the "customer" role.
type UserProfile struct {
	UserID                 uuid.UUID // Foreign key linking this profile to a core User entity.
	DefaultShippingAddress string    // The customer's default delivery address for orders.
	UpdatedAt              time.Time // Timestamp of the last modification.
}

// MerchantProfile holds data specific to the "merchant" role.
type MerchantProfile struct {
	UserID           uuid.UUID // Foreign key linking this profile to a core User entity.
	StoreName        string    // The merchant's store name.
	StoreDescription string    // A description of the store and its products.
	UpdatedAt        time.Time // Timestamp of the last modification.
}
