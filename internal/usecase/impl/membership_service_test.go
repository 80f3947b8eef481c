package impl

import (
	"context"
	"testing"

	"petkeeper/internal/domain/entity"
	domainerrors "petkeeper/internal/domain/errors"
	mockRepo "petkeeper/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMembershipService_FamilyMembersExcluding(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewMembershipService(userRepo, newDiscardLogger())
	ctx := context.Background()

	userRepo.EXPECT().FindUsersByFamilyCode(ctx, "F1").Return([]*entity.UserProfile{
		profile("caller", "F1", "tc"),
		profile("m1", "F1", "t1"),
		profile("caller", "F1", "tc2"),
		profile("m2", "F1", "t2"),
	}, nil)

	members, err := svc.FamilyMembersExcluding(ctx, "F1", "caller")
	require.NoError(t, err)
	require.Len(t, members, 2)
	for _, member := range members {
		assert.NotEqual(t, "caller", member.ID)
	}
}

func TestMembershipService_FamilyOfOne(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewMembershipService(userRepo, newDiscardLogger())
	ctx := context.Background()

	userRepo.EXPECT().FindUsersByFamilyCode(ctx, "F1").Return([]*entity.UserProfile{profile("caller", "F1", "tc")}, nil)

	members, err := svc.FamilyMembersExcluding(ctx, "F1", "caller")
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestMembershipService_EmptyFamilyCodeSkipsStore(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewMembershipService(userRepo, newDiscardLogger())

	members, err := svc.FamilyMembersExcluding(context.Background(), "", "caller")
	require.NoError(t, err)
	assert.Empty(t, members)
	userRepo.AssertNotCalled(t, "FindUsersByFamilyCode")
}

func TestMembershipService_StoreError(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewMembershipService(userRepo, newDiscardLogger())
	ctx := context.Background()

	userRepo.EXPECT().FindUsersByFamilyCode(ctx, "F1").Return(nil, errors.New("deadline exceeded"))

	_, err := svc.FamilyMembersExcluding(ctx, "F1", "caller")
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
}
