package handler

import (
	"net/http"

	"petkeeper/internal/delivery/api/middleware"
	domainerrors "petkeeper/internal/domain/errors"
	"petkeeper/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HeaderFamilyCode exposes the encoded family code next to the PNG.
const HeaderFamilyCode = "X-Family-Code"

// InviteHandler renders family invitations
type InviteHandler struct {
	inviteUC usecase.InviteUsecase
}

// NewInviteHandler is the constructor for InviteHandler
func NewInviteHandler(inviteUC usecase.InviteUsecase) *InviteHandler {
	return &InviteHandler{inviteUC: inviteUC}
}

// GetFamilyQR handles GET /family/qr
func (h *InviteHandler) GetFamilyQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	invite, err := h.inviteUC.FamilyInviteQR(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	c.Response().Header().Set(HeaderFamilyCode, invite.FamilyCode)
	c.Response().Header().Set("Cache-Control", "private, max-age=300")

	return c.Blob(http.StatusOK, "image/png", invite.PNG)
}
