package impl

import (
	"context"
	"log/slog"
	"maps"
	"time"

	deliverycontext "bistro/internal/delivery/context"
	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/service"
	"bistro/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	store  service.SessionStore
	logger *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Store  service.SessionStore
	Logger *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		store:  params.Store,
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Begin starts a flow at its first step, replacing any previous session.
func (srv *sessionService) Begin(ctx context.Context, userID int64, flow entity.SessionFlow) (*entity.Session, error) {
	step, ok := flow.FirstStep()
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown conversation flow")
	}

	session := &entity.Session{
		UserID:    userID,
		Flow:      flow,
		Step:      step,
		Data:      map[string]string{},
		UpdatedAt: time.Now().UTC(),
	}

	if err := srv.store.Save(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to save session")
	}

	srv.log(ctx).Debug("Conversation started",
		slog.Int64("userID", userID), slog.String("flow", string(flow)))

	return session, nil
}

// Advance moves the session to a later step of its flow, merging in the data
// collected at the current step.
func (srv *sessionService) Advance(ctx context.Context, userID int64, next entity.SessionStep, data map[string]string) (*entity.Session, error) {
	session, err := srv.store.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return nil, domainerrors.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	if !session.Flow.CanAdvanceTo(session.Step, next) {
		return nil, domainerrors.ErrInvalidSessionStep.WithDetails(
			"cannot move from " + string(session.Step) + " to " + string(next))
	}

	if session.Data == nil {
		session.Data = map[string]string{}
	}
	maps.Copy(session.Data, data)
	session.Step = next
	session.UpdatedAt = time.Now().UTC()

	if err := srv.store.Save(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to save session")
	}

	return session, nil
}

// Get retrieves the active session.
func (srv *sessionService) Get(ctx context.Context, userID int64) (*entity.Session, error) {
	session, err := srv.store.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return nil, domainerrors.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	return session, nil
}

// Abandon drops the session. Idempotent.
func (srv *sessionService) Abandon(ctx context.Context, userID int64) error {
	if err := srv.store.Delete(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}
