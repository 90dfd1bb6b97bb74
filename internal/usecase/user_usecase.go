// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new customer.
type RegisterUserInput struct {
	Name                   string
	Email                  string
	Password               string
	DefaultShippingAddress string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput defines the mutable profile fields. Nil pointers leave
// the corresponding field untouched.
type UpdateProfileInput struct {
	UserID                 uuid.UUID
	Name                   *string
	DefaultShippingAddress *string
}

// SetMerchantStatusInput grants or revokes the merchant role on an account.
type SetMerchantStatusInput struct {
	UserID           uuid.UUID
	Enabled          bool
	StoreName        string
	StoreDescription string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new customer account with a user profile.
	Register(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)

	// Login verifies credentials and issues access and refresh tokens carrying
	// the account's role claims.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GetProfile retrieves a user together with their profiles.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile applies partial updates to the user's own profile.
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.User, error)

	// SetMerchantStatus grants or revokes the merchant role. Only admins may
	// call this; the delivery layer enforces that.
	SetMerchantStatus(ctx context.Context, input *SetMerchantStatusInput) (*entity.User, error)
}
