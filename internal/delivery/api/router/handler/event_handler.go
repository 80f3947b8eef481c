// Package handler contains the echo handlers of the callable API.
package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"petkeeper/internal/delivery/api/middleware"
	"petkeeper/internal/delivery/api/response"
	"petkeeper/internal/domain/entity"
	domainerrors "petkeeper/internal/domain/errors"
	"petkeeper/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EventHandlerParams holds dependencies for EventHandler, injected by Fx.
type EventHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// EventHandler announces family events
type EventHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewEventHandler is the constructor for EventHandler
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// EventRequest carries the per-kind fields of a family event. Which ones are
// required depends on the kind and is checked by the notification usecase.
type EventRequest struct {
	PetID       string `json:"petId,omitempty" validate:"max=128"`
	TaskTitle   string `json:"taskTitle,omitempty" validate:"max=200"`
	VaccineName string `json:"vaccineName,omitempty" validate:"max=200"`
	DueDate     string `json:"dueDate,omitempty" validate:"max=40"`
	PetName     string `json:"petName,omitempty" validate:"max=100"`
	PetSpecies  string `json:"petSpecies,omitempty" validate:"max=50"`
	Title       string `json:"title,omitempty" validate:"max=200"`
	Message     string `json:"message,omitempty" validate:"max=2000"`
}

// KindedEventRequest is the body of POST /events.
type KindedEventRequest struct {
	Kind string `json:"kind" validate:"required"`
	EventRequest
}

// NotifyResponse is the callable result of a fan-out.
type NotifyResponse struct {
	response.Envelope
	usecase.NotifyResult
}

// NotifyByKind handles POST /events/:kind
func (h *EventHandler) NotifyByKind(c echo.Context) error {
	kind, ok := entity.ParseEventKind(c.Param("kind"))
	if !ok {
		return domainerrors.ErrUnknownEventKind.WithDetails(c.Param("kind"))
	}

	var req EventRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidArgument.WithDetails("malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	return h.notify(c, kind, &req)
}

// Notify handles POST /events with the kind in the body
func (h *EventHandler) Notify(c echo.Context) error {
	var req KindedEventRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidArgument.WithDetails("malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	kind, ok := entity.ParseEventKind(req.Kind)
	if !ok {
		return domainerrors.ErrUnknownEventKind.WithDetails(req.Kind)
	}

	return h.notify(c, kind, &req.EventRequest)
}

func (h *EventHandler) notify(c echo.Context, kind entity.EventKind, req *EventRequest) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	event, err := req.toFamilyEvent(kind)
	if err != nil {
		return err
	}

	result, err := h.notificationUC.NotifyFamily(c.Request().Context(), userID, event)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, NotifyResponse{
		Envelope:     response.OK(c),
		NotifyResult: *result,
	})
}

func (req *EventRequest) toFamilyEvent(kind entity.EventKind) (*entity.FamilyEvent, error) {
	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	return &entity.FamilyEvent{
		Kind:        kind,
		PetID:       strings.TrimSpace(req.PetID),
		TaskTitle:   strings.TrimSpace(req.TaskTitle),
		VaccineName: strings.TrimSpace(req.VaccineName),
		DueDate:     dueDate,
		PetName:     strings.TrimSpace(req.PetName),
		PetSpecies:  strings.TrimSpace(req.PetSpecies),
		Title:       strings.TrimSpace(req.Title),
		Message:     req.Message,
	}, nil
}

// parseDueDate accepts RFC 3339 timestamps and plain dates; empty means absent.
func parseDueDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return &parsed, nil
		}
	}

	return nil, domainerrors.ErrInvalidArgument.WithDetails("dueDate: expected RFC 3339 or YYYY-MM-DD")
}
