// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a user together with both optional profiles.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("UserProfile").
		Preload("MerchantProfile").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a user by the login identifier.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("UserProfile").
		Preload("MerchantProfile").
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user and any profiles attached to the entity in one
// association write.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	syncProfileIDs(user)

	return nil
}

// Update reconciles the user row and both profile rows with the entity.
// A profile present on the entity is upserted; a profile absent from the
// entity is deleted, which is how a merchant role gets revoked.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	updates := map[string]interface{}{
		"name":     user.Name,
		"is_admin": user.IsAdmin,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	if err := repo.reconcileUserProfile(ctx, user); err != nil {
		return err
	}

	return repo.reconcileMerchantProfile(ctx, user)
}

func (repo *userRepository) reconcileUserProfile(ctx context.Context, user *entity.User) error {
	if user.UserProfile == nil {
		if err := repo.db.WithContext(ctx).
			Where("user_id = ?", user.ID).
			Delete(&model.UserProfileModel{}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to remove user profile")
		}

		return nil
	}

	profileM := &model.UserProfileModel{
		UserID:                 user.ID,
		DefaultShippingAddress: user.UserProfile.DefaultShippingAddress,
	}
	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"default_shipping_address", "updated_at"}),
		}).
		Create(profileM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert user profile")
	}

	user.UserProfile.UserID = user.ID
	user.UserProfile.UpdatedAt = profileM.UpdatedAt

	return nil
}

func (repo *userRepository) reconcileMerchantProfile(ctx context.Context, user *entity.User) error {
	if user.MerchantProfile == nil {
		if err := repo.db.WithContext(ctx).
			Where("user_id = ?", user.ID).
			Delete(&model.MerchantProfileModel{}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to remove merchant profile")
		}

		return nil
	}

	profileM := &model.MerchantProfileModel{
		UserID:           user.ID,
		StoreName:        user.MerchantProfile.StoreName,
		StoreDescription: user.MerchantProfile.StoreDescription,
	}
	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"store_name", "store_description", "updated_at"}),
		}).
		Create(profileM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert merchant profile")
	}

	user.MerchantProfile.UserID = user.ID
	user.MerchantProfile.UpdatedAt = profileM.UpdatedAt

	return nil
}

func syncProfileIDs(user *entity.User) {
	if user.UserProfile != nil {
		user.UserProfile.UserID = user.ID
	}
	if user.MerchantProfile != nil {
		user.MerchantProfile.UserID = user.ID
	}
}

// fromUserDomain converts a domain entity to a persistence model.
func fromUserDomain(user *entity.User) *model.UserModel {
	userM := &model.UserModel{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
		IsAdmin:      user.IsAdmin,
	}
	if user.UserProfile != nil {
		userM.UserProfile = &model.UserProfileModel{
			DefaultShippingAddress: user.UserProfile.DefaultShippingAddress,
		}
	}
	if user.MerchantProfile != nil {
		userM.MerchantProfile = &model.MerchantProfileModel{
			StoreName:        user.MerchantProfile.StoreName,
			StoreDescription: user.MerchantProfile.StoreDescription,
		}
	}

	return userM
}

// toUserDomain converts a persistence model to a domain entity.
func toUserDomain(userM *model.UserModel) *entity.User {
	user := &entity.User{
		ID:           userM.ID,
		Email:        userM.Email,
		Name:         userM.Name,
		PasswordHash: userM.PasswordHash,
		IsAdmin:      userM.IsAdmin,
		CreatedAt:    userM.CreatedAt,
		UpdatedAt:    userM.UpdatedAt,
	}
	if userM.UserProfile != nil {
		user.UserProfile = &entity.UserProfile{
			UserID:                 userM.UserProfile.UserID,
			DefaultShippingAddress: userM.UserProfile.DefaultShippingAddress,
			UpdatedAt:              userM.UserProfile.UpdatedAt,
		}
	}
	if userM.MerchantProfile != nil {
		user.MerchantProfile = &entity.MerchantProfile{
			UserID:           userM.MerchantProfile.UserID,
			StoreName:        userM.MerchantProfile.StoreName,
			StoreDescription: userM.MerchantProfile.StoreDescription,
			UpdatedAt:        userM.MerchantProfile.UpdatedAt,
		}
	}

	return user
}
