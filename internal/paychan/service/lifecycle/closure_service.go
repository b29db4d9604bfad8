package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/paychan-backend/internal/clock"
	"github.com/goodnatureofminers/paychan-backend/internal/paychan/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConfirmRequest reports the hash the external signer returned for a prepared closure.
type ConfirmRequest struct {
	ChannelID string
	Initiator string
	TxHash    string
}

// ClosureResult is the user-visible result of confirming a closure.
type ClosureResult struct {
	Channel  model.Channel
	Outcome  model.ValidationOutcome
	Modified bool
	Source   model.BalanceSource
	Message  string
}

// ClosureService runs the closure protocol: authorize, resolve the balance, build the claim,
// and after external submission validate it and reconcile the channel.
type ClosureService struct {
	repo       ChannelRepository
	resolver   *BalanceResolver
	builder    *ClosureBuilder
	validator  *TxValidator
	reconciler *Reconciler
	events     EventSink
	metrics    ReconcilerMetrics
	logger     *zap.Logger
	now        func() time.Time
}

// NewClosureService wires the closure protocol components.
func NewClosureService(
	repo ChannelRepository,
	resolver *BalanceResolver,
	builder *ClosureBuilder,
	validator *TxValidator,
	reconciler *Reconciler,
	events EventSink,
	metrics ReconcilerMetrics,
	logger *zap.Logger,
) (*ClosureService, error) {
	switch {
	case repo == nil:
		return nil, errors.New("channel repository is required")
	case resolver == nil:
		return nil, errors.New("balance resolver is required")
	case builder == nil:
		return nil, errors.New("closure builder is required")
	case validator == nil:
		return nil, errors.New("tx validator is required")
	case reconciler == nil:
		return nil, errors.New("reconciler is required")
	case events == nil:
		return nil, errors.New("event sink is required")
	case metrics == nil:
		return nil, errors.New("reconciler metrics is required")
	}
	return &ClosureService{
		repo:       repo,
		resolver:   resolver,
		builder:    builder,
		validator:  validator,
		reconciler: reconciler,
		events:     events,
		metrics:    metrics,
		logger:     logger.Named("closure_service"),
		now:        clock.NowUTC,
	}, nil
}

// PrepareClosure returns the unsigned claim that closes channelID on behalf of initiator.
// Nothing is persisted except the balance audit record.
func (s *ClosureService) PrepareClosure(ctx context.Context, channelID, initiator string) (attempt model.ClosureAttempt, err error) {
	role := model.RoleUnknown
	defer func() {
		s.metrics.ObservePrepare(string(role), string(attempt.Source), err)
	}()

	ch, err := s.load(ctx, channelID)
	if err != nil {
		return model.ClosureAttempt{}, err
	}
	role, err = s.authorize(ch, initiator)
	if err != nil {
		return model.ClosureAttempt{}, err
	}

	res, err := s.resolver.Resolve(ctx, ch, initiator)
	if err != nil {
		return model.ClosureAttempt{}, fmt.Errorf("resolve balance: %w", err)
	}
	tx, err := s.builder.Build(ctx, ch, initiator, res.Amount)
	if err != nil {
		return model.ClosureAttempt{}, fmt.Errorf("build closure: %w", err)
	}

	attempt = model.ClosureAttempt{
		ID:              uuid.New(),
		ChannelID:       ch.ID,
		Initiator:       initiator,
		Role:            role,
		ResolvedBalance: res.Amount,
		Source:          res.Source,
		Unverified:      res.Unverified,
		OffChainBalance: res.OffChain,
		LedgerBalance:   res.Ledger,
		LedgerKnown:     res.LedgerKnown,
		Tx:              tx,
		PreparedAt:      s.now(),
	}

	auditErr := s.events.RecordBalanceAudit(ctx, model.BalanceAudit{
		AttemptID:   attempt.ID,
		ChannelID:   ch.ID,
		Initiator:   initiator,
		Role:        role,
		OffChain:    res.OffChain,
		Ledger:      res.Ledger,
		LedgerKnown: res.LedgerKnown,
		Source:      res.Source,
		Unverified:  res.Unverified,
		RecordedAt:  attempt.PreparedAt,
	})
	if auditErr != nil {
		s.logger.Error("record balance audit", zap.String("channel_id", ch.ID), zap.Error(auditErr))
	}

	s.logger.Info("closure prepared",
		zap.String("channel_id", ch.ID),
		zap.String("initiator", initiator),
		zap.String("role", string(role)),
		zap.String("source", string(res.Source)),
		zap.Bool("unverified", res.Unverified),
		zap.String("balance_xrp", model.XRP(res.Amount)))
	return attempt, nil
}

// ConfirmClosure validates the submitted claim and applies what the ledger did to the channel.
// An outcome that cannot be confirmed never changes the channel's lifecycle state.
func (s *ClosureService) ConfirmClosure(ctx context.Context, req ConfirmRequest) (ClosureResult, error) {
	ch, err := s.load(ctx, req.ChannelID)
	if err != nil {
		return ClosureResult{}, err
	}
	if ch.RoleOf(req.Initiator) == model.RoleUnknown {
		return ClosureResult{}, fmt.Errorf("%w: %s", model.ErrUnauthorizedParty, req.Initiator)
	}

	// The source is decided from the stored channel, the same way PrepareClosure decided it.
	result := ClosureResult{Channel: ch, Source: s.resolver.SourceFor(ch, req.Initiator)}
	if ch.Status == model.StatusClosed {
		result.Message = s.message(result, "channel already closed, nothing to apply")
		return result, nil
	}

	outcome, err := s.validator.Validate(ctx, req.TxHash, ch.ID)
	if err != nil {
		return ClosureResult{}, fmt.Errorf("validate closure: %w", err)
	}
	result.Outcome = outcome

	applied, err := s.reconciler.ApplyClosure(ctx, ch.ID, outcome)
	if err != nil {
		return ClosureResult{}, fmt.Errorf("apply closure: %w", err)
	}
	result.Channel = applied.Channel
	result.Modified = applied.Modified
	result.Message = s.message(result, describeOutcome(outcome, applied))
	return result, nil
}

func (s *ClosureService) load(ctx context.Context, channelID string) (model.Channel, error) {
	id := model.NormalizeHash(channelID)
	if err := model.ValidateChannelID(id); err != nil {
		return model.Channel{}, err
	}
	ch, err := s.repo.Channel(ctx, id)
	if err != nil {
		return model.Channel{}, fmt.Errorf("load channel: %w", err)
	}
	return ch, nil
}

// authorize rejects a closure before anything is built: strangers, terminal channels, and a
// funding party trying to finalize inside the grace period.
func (s *ClosureService) authorize(ch model.Channel, initiator string) (model.Role, error) {
	role := ch.RoleOf(initiator)
	switch {
	case role == model.RoleUnknown:
		return role, fmt.Errorf("%w: %s", model.ErrUnauthorizedParty, initiator)
	case ch.Status == model.StatusClosed:
		return role, model.ErrChannelClosed
	case role == model.RoleFunder && ch.Status == model.StatusClosing && !ch.Expired(s.now()):
		return role, fmt.Errorf("%w: expires at %s", model.ErrGracePeriodActive, ch.ExpirationTime.Format(time.RFC3339))
	}
	return role, nil
}

func (s *ClosureService) message(r ClosureResult, what string) string {
	return fmt.Sprintf("%s; balance source: %s; row modified: %t", what, r.Source, r.Modified)
}

func describeOutcome(o model.ValidationOutcome, applied ReconcileResult) string {
	switch {
	case applied.Previous == model.StatusClosed:
		return "channel already closed, nothing to apply"
	case o.Failure == model.FailureRejected:
		return fmt.Sprintf("closure rejected by ledger with %s, rebuild the claim", o.ResultCode)
	case o.Failure == model.FailureInvalidReference:
		return "transaction is not a closure claim for this channel"
	case !o.Succeeded():
		return fmt.Sprintf("closure outcome unknown after %d attempts, retry later", o.Attempts)
	case !o.Conclusive():
		return "closure applied on ledger but channel state unverified, retry later"
	case applied.Channel.Status == model.StatusClosing:
		return fmt.Sprintf("closure scheduled, channel expires at %s", applied.Channel.ExpirationTime.Format(time.RFC3339))
	default:
		return fmt.Sprintf("channel is %s", applied.Channel.Status)
	}
}
