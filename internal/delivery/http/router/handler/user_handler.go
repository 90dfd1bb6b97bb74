// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	Name                   string `json:"name" validate:"required"`
	Email                  string `json:"email" validate:"required,email"`
	Password               string `json:"password" validate:"required,min=8"`
	DefaultShippingAddress string `json:"default_shipping_address"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Name                   *string `json:"name"`
	DefaultShippingAddress *string `json:"default_shipping_address"`
}

type setMerchantStatusRequest struct {
	Enabled          bool   `json:"enabled"`
	StoreName        string `json:"store_name"`
	StoreDescription string `json:"store_description"`
}

// userResponse is the public shape of an account. The password hash never
// leaves the service.
type userResponse struct {
	ID              uuid.UUID                `json:"id"`
	Email           string                   `json:"email"`
	Name            string                   `json:"name"`
	Roles           []string                 `json:"roles"`
	UserProfile     *userProfileResponse     `json:"user_profile,omitempty"`
	MerchantProfile *merchantProfileResponse `json:"merchant_profile,omitempty"`
}

type userProfileResponse struct {
	DefaultShippingAddress string `json:"default_shipping_address"`
}

type merchantProfileResponse struct {
	StoreName        string `json:"store_name"`
	StoreDescription string `json:"store_description"`
}

func toUserResponse(user *entity.User) *userResponse {
	resp := &userResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Roles: user.Roles().ToStrings(),
	}
	if user.UserProfile != nil {
		resp.UserProfile = &userProfileResponse{
			DefaultShippingAddress: user.UserProfile.DefaultShippingAddress,
		}
	}
	if user.MerchantProfile != nil {
		resp.MerchantProfile = &merchantProfileResponse{
			StoreName:        user.MerchantProfile.StoreName,
			StoreDescription: user.MerchantProfile.StoreDescription,
		}
	}

	return resp
}

// Register handles the customer registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterUserInput{
		Name:                   req.Name,
		Email:                  req.Email,
		Password:               req.Password,
		DefaultShippingAddress: req.DefaultShippingAddress,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(output.User), "User registered successfully")
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
		"user":          toUserResponse(output.User),
	}, "Login successful")
}

// GetProfile handles the request to get the current user's profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Profile retrieved successfully")
}

// UpdateProfile handles partial updates to the current user's profile.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), &usecase.UpdateProfileInput{
		UserID:                 userID,
		Name:                   req.Name,
		DefaultShippingAddress: req.DefaultShippingAddress,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Profile updated successfully")
}

// SetMerchantStatus handles granting or revoking the merchant role. Admin only;
// the router enforces the role.
func (h *UserHandler) SetMerchantStatus(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	var req setMerchantStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid merchant status input")
	}

	user, err := h.uc.SetMerchantStatus(c.Request().Context(), &usecase.SetMerchantStatusInput{
		UserID:           targetID,
		Enabled:          req.Enabled,
		StoreName:        req.StoreName,
		StoreDescription: req.StoreDescription,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Merchant status updated successfully")
}
