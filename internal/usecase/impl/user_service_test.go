package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:                   "Test User",
		Email:                  "test@example.com",
		Password:               "password123",
		DefaultShippingAddress: "123 Test St",
	}

	fx.hasher.EXPECT().Hash("password123").Return("hashed-password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "Test User", output.User.Name)
	assert.Equal(t, "test@example.com", output.User.Email)
	assert.Equal(t, "hashed-password", output.User.PasswordHash)
	require.NotNil(t, output.User.UserProfile)
	assert.Equal(t, "123 Test St", output.User.UserProfile.DefaultShippingAddress)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestUserService_Register_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
	}

	fx.hasher.EXPECT().Hash("password123").Return("", errors.New("bcrypt failure"))

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "password123",
	}

	fx.hasher.EXPECT().Hash("password123").Return("hashed-password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUserAlreadyExists)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "test@example.com",
		Name:         "Test User",
		PasswordHash: "hashed-password",
		UserProfile:  &entity.UserProfile{UserID: userID},
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("password123", "hashed-password").Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(userID, []string{"user"}).
		Return("access-token", "refresh-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_MerchantClaims(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:              userID,
		Email:           "merchant@example.com",
		PasswordHash:    "hashed-password",
		UserProfile:     &entity.UserProfile{UserID: userID},
		MerchantProfile: &entity.MerchantProfile{UserID: userID, StoreName: "Test Store"},
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "merchant@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("password123", "hashed-password").Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(userID, []string{"user", "merchant"}).
		Return("access-token", "refresh-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "merchant@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "missing@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "missing@example.com",
		Password: "password123",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	// Unknown account and bad password are indistinguishable to the caller.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed-password",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong-password", "hashed-password").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "wrong-password",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_GetProfile_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	expectedUser := &entity.User{ID: userID, Email: "test@example.com", Name: "Test User"}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(expectedUser, nil)

	user, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expectedUser, user)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateProfile_PartialUpdate(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	existingUser := &entity.User{
		ID:   userID,
		Name: "Old Name",
		UserProfile: &entity.UserProfile{
			UserID:                 userID,
			DefaultShippingAddress: "Old Address",
		},
	}

	newName := "New Name"

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(existingUser, nil)
	fx.userRepo.EXPECT().Update(ctx, existingUser).Return(nil)

	user, err := fx.service.UpdateProfile(ctx, &usecase.UpdateProfileInput{
		UserID: userID,
		Name:   &newName,
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", user.Name)
	// Untouched fields keep their previous values.
	assert.Equal(t, "Old Address", user.UserProfile.DefaultShippingAddress)
}

func TestUserService_UpdateProfile_ShippingAddress(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	existingUser := &entity.User{ID: userID, Name: "Test User"}

	newAddress := "456 New St"

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(existingUser, nil)
	fx.userRepo.EXPECT().Update(ctx, existingUser).Return(nil)

	user, err := fx.service.UpdateProfile(ctx, &usecase.UpdateProfileInput{
		UserID:                 userID,
		DefaultShippingAddress: &newAddress,
	})

	require.NoError(t, err)
	require.NotNil(t, user.UserProfile)
	assert.Equal(t, "456 New St", user.UserProfile.DefaultShippingAddress)
}

func TestUserService_SetMerchantStatus_Enable(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	existingUser := &entity.User{ID: userID, Name: "Test User"}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(existingUser, nil)
	fx.userRepo.EXPECT().Update(ctx, existingUser).Return(nil)

	user, err := fx.service.SetMerchantStatus(ctx, &usecase.SetMerchantStatusInput{
		UserID:           userID,
		Enabled:          true,
		StoreName:        "Test Store",
		StoreDescription: "A store for testing",
	})

	require.NoError(t, err)
	require.NotNil(t, user.MerchantProfile)
	assert.Equal(t, "Test Store", user.MerchantProfile.StoreName)
	assert.Equal(t, "A store for testing", user.MerchantProfile.StoreDescription)
	assert.True(t, user.Roles().IsMerchant())
}

func TestUserService_SetMerchantStatus_EnableWithoutStoreName(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	existingUser := &entity.User{ID: userID}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(existingUser, nil)

	user, err := fx.service.SetMerchantStatus(ctx, &usecase.SetMerchantStatusInput{
		UserID:  userID,
		Enabled: true,
	})

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_SetMerchantStatus_Revoke(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	existingUser := &entity.User{
		ID:              userID,
		MerchantProfile: &entity.MerchantProfile{UserID: userID, StoreName: "Old Store"},
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(existingUser, nil)
	fx.userRepo.EXPECT().Update(ctx, existingUser).Return(nil)

	user, err := fx.service.SetMerchantStatus(ctx, &usecase.SetMerchantStatusInput{
		UserID:  userID,
		Enabled: false,
	})

	require.NoError(t, err)
	assert.Nil(t, user.MerchantProfile)
	assert.False(t, user.Roles().IsMerchant())
}

func TestUserService_SetMerchantStatus_UserNotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.SetMerchantStatus(ctx, &usecase.SetMerchantStatusInput{
		UserID:    userID,
		Enabled:   true,
		StoreName: "Test Store",
	})

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
