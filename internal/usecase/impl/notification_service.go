package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"petkeeper/config"
	deliverycontext "petkeeper/internal/delivery/context"
	"petkeeper/internal/domain/entity"
	domainerrors "petkeeper/internal/domain/errors"
	"petkeeper/internal/domain/repository"
	"petkeeper/internal/domain/service"
	"petkeeper/internal/errors"
	"petkeeper/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// NoTokensMessage is returned when nobody else in the family has a device registered.
const NoTokensMessage = "Nenhum token para notificar."

type notificationService struct {
	identityUC     usecase.IdentityUsecase
	membershipUC   usecase.MembershipUsecase
	dispatchUC     usecase.DispatchUsecase
	petRepo        repository.PetRepository
	publisher      service.EventPublisher
	metrics        service.MetricsRecorder
	composer       *payloadComposer
	unknownPetName string
	asyncCleanup   bool
	logger         *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	IdentityUC   usecase.IdentityUsecase
	MembershipUC usecase.MembershipUsecase
	DispatchUC   usecase.DispatchUsecase
	PetRepo      repository.PetRepository
	Publisher    service.EventPublisher
	Metrics      service.MetricsRecorder
	Config       *config.Config
	Logger       *slog.Logger
}

// NewNotificationService creates the family fan-out service
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	notificationCfg := config.DefaultNotificationConfig()
	if params.Config != nil && params.Config.Notification != nil {
		notificationCfg = params.Config.Notification
	}

	return &notificationService{
		identityUC:     params.IdentityUC,
		membershipUC:   params.MembershipUC,
		dispatchUC:     params.DispatchUC,
		petRepo:        params.PetRepo,
		publisher:      params.Publisher,
		metrics:        params.Metrics,
		composer:       newPayloadComposer(notificationCfg),
		unknownPetName: notificationCfg.UnknownPetName,
		asyncCleanup:   notificationCfg.AsyncCleanup,
		logger:         params.Logger,
	}
}

// NotifyFamily runs resolve, gather, collect and dispatch for one family event
func (s *notificationService) NotifyFamily(ctx context.Context, callerID string, event *entity.FamilyEvent) (*usecase.NotifyResult, error) {
	if callerID == "" {
		return nil, domainerrors.ErrUnauthenticated
	}
	if err := validateEvent(event); err != nil {
		return nil, err
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.String("caller_id", callerID),
		slog.String("kind", string(event.Kind)),
	)

	caller, err := s.identityUC.ResolveCaller(ctx, callerID)
	if err != nil {
		return nil, err
	}

	sender := payloadSender{DisplayName: caller.DisplayName}
	if event.Kind.NeedsPet() {
		sender.PetName, err = s.petName(ctx, event.PetID, caller.FamilyCode)
		if err != nil {
			return nil, err
		}
	}

	members, err := s.membershipUC.FamilyMembersExcluding(ctx, caller.FamilyCode, caller.UserID)
	if err != nil {
		return nil, err
	}

	tokens := CollectTokens(members, caller.Tokens...)
	if len(tokens) == 0 {
		logger.Info("No family tokens to notify", slog.Int("members", len(members)))

		return &usecase.NotifyResult{Message: NoTokensMessage}, nil
	}

	result, err := s.dispatchUC.Dispatch(ctx, tokens, s.composer.Compose(event, sender))
	if err != nil {
		return nil, err
	}

	s.metrics.RecordDispatch(event.Kind, result)
	s.requestTokenCleanup(ctx, logger, result, members)

	return &usecase.NotifyResult{
		NotificationsSent: result.SentCount,
		FailureCount:      result.FailureCount,
		TokenCount:        result.TokenCount,
	}, nil
}

func validateEvent(event *entity.FamilyEvent) error {
	if event == nil {
		return domainerrors.ErrInvalidArgument.WithDetails("event is required")
	}

	if _, ok := entity.ParseEventKind(string(event.Kind)); !ok {
		return domainerrors.ErrUnknownEventKind.WithDetails(string(event.Kind))
	}

	if missing := event.MissingFields(); len(missing) > 0 {
		return domainerrors.ErrInvalidArgument.WithDetails(strings.Join(missing, ", "))
	}

	return nil
}

// petName loads the pet's display name. A pet registered to another family is
// reported as missing.
func (s *notificationService) petName(ctx context.Context, petID, familyCode string) (string, error) {
	pet, err := s.petRepo.FindPetByID(ctx, petID)
	if err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			return "", domainerrors.ErrPetNotFound
		}

		return "", domainerrors.NewInternalError(err, "failed to load pet")
	}
	if pet.FamilyCode != "" && pet.FamilyCode != familyCode {
		return "", domainerrors.ErrPetNotFound
	}

	if strings.TrimSpace(pet.Name) == "" {
		return s.unknownPetName, nil
	}

	return pet.Name, nil
}

// requestTokenCleanup publishes a hygiene job for the owners of dead tokens.
// The worker re-checks with a dry run before removing anything; publish failures only get logged.
func (s *notificationService) requestTokenCleanup(ctx context.Context, logger *slog.Logger, result *entity.DispatchResult, members []*entity.UserProfile) {
	if !s.asyncCleanup {
		return
	}

	deadTokens := result.DeadTokens()
	if len(deadTokens) == 0 {
		return
	}

	owners := tokenOwners(members)
	var userIDs []string
	for _, token := range deadTokens {
		for _, owner := range owners[token] {
			if !slices.Contains(userIDs, owner) {
				userIDs = append(userIDs, owner)
			}
		}
	}
	if len(userIDs) == 0 {
		return
	}
	slices.Sort(userIDs)

	event := &service.WorkerEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventID:   uuid.New().String(),
		Type:      service.WorkerEventTokensCleanup,
		UserIDs:   userIDs,
	}

	if err := s.publisher.PublishWorkerEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish token cleanup event",
			slog.Int("user_count", len(userIDs)),
			slog.Any("error", err),
		)

		return
	}

	logger.Info("Token cleanup requested",
		slog.String("event_id", event.EventID),
		slog.Int("dead_tokens", len(deadTokens)),
		slog.Int("user_count", len(userIDs)),
	)
}
