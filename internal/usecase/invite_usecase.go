package usecase

import (
	"context"
)

// FamilyInvite is a rendered invitation to join the caller's family.
type FamilyInvite struct {
	FamilyCode string
	PNG        []byte
}

// InviteUsecase builds family invitations.
type InviteUsecase interface {
	// FamilyInviteQR renders the join QR code for the caller's family.
	FamilyInviteQR(ctx context.Context, callerID string) (*FamilyInvite, error)
}
