package firestore

import (
	"context"

	"petkeeper/internal/domain/entity"
	"petkeeper/internal/domain/repository"

	cfs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

type userRepository struct {
	client *cfs.Client
}

// NewUserRepository creates a UserRepository backed by the users collection
func NewUserRepository(client *cfs.Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (repo *userRepository) FindUserByID(ctx context.Context, id string) (*entity.UserProfile, error) {
	ref := docRef(repo.client, usersCollection, id)
	if ref == nil {
		return nil, repository.ErrUserNotFound
	}

	snap, err := ref.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to get user")
	}

	return toUserProfile(snap.Ref.ID, snap.Data()), nil
}

func (repo *userRepository) FindUsersByFamilyCode(ctx context.Context, familyCode string) ([]*entity.UserProfile, error) {
	iter := repo.client.Collection(usersCollection).
		Where(fieldFamilyCode, "==", familyCode).
		Documents(ctx)
	defer iter.Stop()

	var users []*entity.UserProfile
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to query users by family code")
		}

		users = append(users, toUserProfile(snap.Ref.ID, snap.Data()))
	}

	return users, nil
}

func (repo *userRepository) UpdateFCMTokens(ctx context.Context, id string, tokens []string) error {
	ref := docRef(repo.client, usersCollection, id)
	if ref == nil {
		return repository.ErrUserNotFound
	}

	if tokens == nil {
		tokens = []string{}
	}

	_, err := ref.Update(ctx, []cfs.Update{
		{Path: fieldFCMTokens, Value: tokens},
		{Path: fieldUpdatedAt, Value: cfs.ServerTimestamp},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to update fcm tokens")
	}

	return nil
}

func toUserProfile(id string, data map[string]any) *entity.UserProfile {
	profile := &entity.UserProfile{
		ID:          id,
		FamilyCode:  stringField(data, fieldFamilyCode),
		DisplayName: stringField(data, fieldDisplayName),
		FCMTokens:   stringSliceField(data, fieldFCMTokens),
	}
	if updatedAt := timeField(data, fieldUpdatedAt); updatedAt != nil {
		profile.UpdatedAt = *updatedAt
	}

	return profile
}
