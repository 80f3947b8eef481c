package handler

import (
	"net/http"

	"petkeeper/internal/delivery/api/middleware"
	"petkeeper/internal/delivery/api/response"
	domainerrors "petkeeper/internal/domain/errors"
	"petkeeper/internal/usecase"

	"github.com/labstack/echo/v4"
)

// TokenHandler runs token hygiene for the caller
type TokenHandler struct {
	hygieneUC usecase.TokenHygieneUsecase
}

// NewTokenHandler is the constructor for TokenHandler
func NewTokenHandler(hygieneUC usecase.TokenHygieneUsecase) *TokenHandler {
	return &TokenHandler{hygieneUC: hygieneUC}
}

// CleanupResponse reports the hygiene outcome.
type CleanupResponse struct {
	response.Envelope
	usecase.TokenCleanupResult
}

// CleanupTokens handles POST /tokens/cleanup
func (h *TokenHandler) CleanupTokens(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	result, err := h.hygieneUC.CleanupTokens(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, CleanupResponse{
		Envelope:           response.OK(c),
		TokenCleanupResult: *result,
	})
}
