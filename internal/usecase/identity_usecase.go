package usecase

import (
	"context"

	"petkeeper/internal/domain/entity"
)

// CallerIdentity is the resolved identity of the member that triggered an operation.
type CallerIdentity struct {
	UserID      string   `json:"user_id"`
	FamilyCode  string   `json:"family_code"`  // Never empty once resolved.
	DisplayName string   `json:"display_name"` // Falls back to the configured placeholder name.
	Tokens      []string `json:"-"`            // The caller's own push tokens, never fanned out to.
}

// IdentityUsecase resolves an authenticated caller into a family identity.
type IdentityUsecase interface {
	// ResolveCaller loads the caller's profile. It fails with Unauthenticated for an
	// empty ID, NotFound when the profile is missing and FailedPrecondition when the
	// caller has not joined a family.
	ResolveCaller(ctx context.Context, callerID string) (*CallerIdentity, error)
}

// MembershipUsecase lists family members.
type MembershipUsecase interface {
	// FamilyMembersExcluding returns every profile in the family except excludeUserID.
	// An empty family code yields an empty list without touching the store.
	FamilyMembersExcluding(ctx context.Context, familyCode, excludeUserID string) ([]*entity.UserProfile, error)
}
