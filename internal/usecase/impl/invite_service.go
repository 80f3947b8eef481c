package impl

import (
	"context"

	domainerrors "petkeeper/internal/domain/errors"
	"petkeeper/internal/domain/service"
	"petkeeper/internal/usecase"
)

type inviteService struct {
	identityUC usecase.IdentityUsecase
	qrcodeSvc  service.QRCodeService
}

// NewInviteService creates a new family invite service
func NewInviteService(identityUC usecase.IdentityUsecase, qrcodeSvc service.QRCodeService) usecase.InviteUsecase {
	return &inviteService{
		identityUC: identityUC,
		qrcodeSvc:  qrcodeSvc,
	}
}

// FamilyInviteQR renders the join QR code for the caller's family
func (s *inviteService) FamilyInviteQR(ctx context.Context, callerID string) (*usecase.FamilyInvite, error) {
	caller, err := s.identityUC.ResolveCaller(ctx, callerID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcodeSvc.GenerateFamilyInviteQR(caller.FamilyCode)
	if err != nil {
		return nil, domainerrors.NewInternalError(err, "failed to render invite QR code")
	}

	return &usecase.FamilyInvite{
		FamilyCode: caller.FamilyCode,
		PNG:        png,
	}, nil
}
