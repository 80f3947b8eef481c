// Package postgres contains the relational implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"petkeeper/internal/domain/entity"
	"petkeeper/internal/domain/repository"
	"petkeeper/internal/infra/persistence/model"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindUserByID retrieves a single profile by its user ID.
func (repo *userRepository) FindUserByID(ctx context.Context, id string) (*entity.UserProfile, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserProfileDomain(&userM), nil
}

// FindUsersByFamilyCode retrieves every profile sharing familyCode.
func (repo *userRepository) FindUsersByFamilyCode(ctx context.Context, familyCode string) ([]*entity.UserProfile, error) {
	var models []*model.UserModel
	err := repo.db.WithContext(ctx).
		Where("family_code = ?", familyCode).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users by family code")
	}

	users := make([]*entity.UserProfile, 0, len(models))
	for _, userM := range models {
		users = append(users, toUserProfileDomain(userM))
	}

	return users, nil
}

// UpdateFCMTokens replaces the token array and bumps updated_at.
func (repo *userRepository) UpdateFCMTokens(ctx context.Context, id string, tokens []string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"fcm_tokens": fromTokenList(tokens),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update fcm tokens")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toUserProfileDomain(data *model.UserModel) *entity.UserProfile {
	if data == nil {
		return nil
	}

	return &entity.UserProfile{
		ID:          data.ID,
		FamilyCode:  data.FamilyCode,
		DisplayName: data.DisplayName,
		FCMTokens:   []string(data.FCMTokens),
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromTokenList never returns nil so the column is written as '{}' rather than NULL.
func fromTokenList(tokens []string) pq.StringArray {
	out := make(pq.StringArray, 0, len(tokens))

	return append(out, tokens...)
}
