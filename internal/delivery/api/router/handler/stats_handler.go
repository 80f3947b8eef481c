package handler

import (
	"net/http"

	"petkeeper/internal/delivery/api/middleware"
	"petkeeper/internal/delivery/api/response"
	"petkeeper/internal/domain/entity"
	domainerrors "petkeeper/internal/domain/errors"
	"petkeeper/internal/usecase"

	"github.com/labstack/echo/v4"
)

// StatsHandler serves family statistics
type StatsHandler struct {
	statsUC usecase.FamilyStatsUsecase
}

// NewStatsHandler is the constructor for StatsHandler
func NewStatsHandler(statsUC usecase.FamilyStatsUsecase) *StatsHandler {
	return &StatsHandler{statsUC: statsUC}
}

// StatsResponse wraps the caller's family counters.
type StatsResponse struct {
	response.Envelope
	Stats *entity.FamilyStats `json:"stats"`
}

// GetFamilyStats handles GET /family/stats
func (h *StatsHandler) GetFamilyStats(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	stats, err := h.statsUC.CallerFamilyStats(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, StatsResponse{
		Envelope: response.OK(c),
		Stats:    stats,
	})
}
