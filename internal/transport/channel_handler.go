// Package transport exposes the payment channel lifecycle over HTTP.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goodnatureofminers/paychan-backend/internal/paychan/model"
	"github.com/goodnatureofminers/paychan-backend/internal/paychan/service/lifecycle"
	"github.com/goodnatureofminers/paychan-backend/internal/paychan/xrpl"
	"github.com/goodnatureofminers/paychan-backend/pkg/safe"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

const (
	defaultEventLimit = 50
	maxEventLimit     = 500
	maxBodyBytes      = 1 << 16
	// requestTimeout leaves room for a full finality poll inside a confirm call.
	requestTimeout = 90 * time.Second
)

// ChannelHandler serves the channel lifecycle API.
type ChannelHandler struct {
	registry Registry
	closures Closures
	sync     LedgerSync
	sweeper  Sweeper
	events   EventReader
	health   HealthChecker
	logger   *zap.Logger
}

// NewChannelHandler returns a ChannelHandler instance.
func NewChannelHandler(
	registry Registry,
	closures Closures,
	sync LedgerSync,
	sweeper Sweeper,
	events EventReader,
	health HealthChecker,
	logger *zap.Logger,
) (*ChannelHandler, error) {
	switch {
	case registry == nil:
		return nil, errors.New("registry is required")
	case closures == nil:
		return nil, errors.New("closure service is required")
	case sync == nil:
		return nil, errors.New("ledger sync is required")
	case sweeper == nil:
		return nil, errors.New("sweeper is required")
	case events == nil:
		return nil, errors.New("event reader is required")
	case health == nil:
		return nil, errors.New("health checker is required")
	}
	return &ChannelHandler{
		registry: registry,
		closures: closures,
		sync:     sync,
		sweeper:  sweeper,
		events:   events,
		health:   health,
		logger:   logger.Named("http"),
	}, nil
}

// Routes returns the router with every endpoint mounted.
func (h *ChannelHandler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(cors.Default().Handler)

	r.Get("/health", h.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/channels", h.handleRegister)
		r.Route("/channels/{channelID}", func(r chi.Router) {
			r.Get("/", h.handleChannel)
			r.Post("/accruals", h.handleAccrue)
			r.Post("/closures", h.handlePrepareClosure)
			r.Post("/closures/confirm", h.handleConfirmClosure)
			r.Post("/sync", h.handleSync)
			r.Get("/events", h.handleEvents)
		})
		r.Post("/sweeps", h.handleSweep)
	})
	return r
}

func (h *ChannelHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.health.Ping(r.Context()); err != nil {
		h.logger.Warn("health check failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *ChannelHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !h.decode(w, r, &req) {
		return
	}
	funded, err := safe.ParseUint64(req.FundedDrops)
	if err != nil {
		h.fail(w, r, fmt.Errorf("%w: funded_drops: %w", model.ErrInvalidRequest, err))
		return
	}
	settleDelay, err := safe.Uint32(req.SettleDelaySeconds)
	if err != nil {
		h.fail(w, r, fmt.Errorf("%w: settle_delay_seconds: %w", model.ErrInvalidRequest, err))
		return
	}

	ch, err := h.registry.Register(r.Context(), lifecycle.RegisterRequest{
		ChannelID:          req.ChannelID,
		FunderAddress:      req.Funder,
		RecipientAddress:   req.Recipient,
		FundedAmount:       funded,
		SettleDelaySeconds: settleDelay,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toChannelResponse(ch))
}

func (h *ChannelHandler) handleChannel(w http.ResponseWriter, r *http.Request) {
	ch, err := h.registry.Channel(r.Context(), chi.URLParam(r, "channelID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toChannelResponse(ch))
}

func (h *ChannelHandler) handleAccrue(w http.ResponseWriter, r *http.Request) {
	var req accrualRequest
	if !h.decode(w, r, &req) {
		return
	}
	amount, err := safe.ParseUint64(req.AmountDrops)
	if err != nil {
		h.fail(w, r, fmt.Errorf("%w: amount_drops: %w", model.ErrInvalidRequest, err))
		return
	}
	ch, err := h.registry.Accrue(r.Context(), chi.URLParam(r, "channelID"), amount)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toChannelResponse(ch))
}

func (h *ChannelHandler) handlePrepareClosure(w http.ResponseWriter, r *http.Request) {
	var req prepareClosureRequest
	if !h.decode(w, r, &req) {
		return
	}
	attempt, err := h.closures.PrepareClosure(r.Context(), chi.URLParam(r, "channelID"), req.Initiator)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAttemptResponse(attempt))
}

func (h *ChannelHandler) handleConfirmClosure(w http.ResponseWriter, r *http.Request) {
	var req confirmClosureRequest
	if !h.decode(w, r, &req) {
		return
	}
	res, err := h.closures.ConfirmClosure(r.Context(), lifecycle.ConfirmRequest{
		ChannelID: chi.URLParam(r, "channelID"),
		Initiator: req.Initiator,
		TxHash:    req.TxHash,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	status := http.StatusOK
	if !res.Outcome.Conclusive() && res.Channel.Status != model.StatusClosed {
		status = http.StatusAccepted
	}
	writeJSON(w, status, toClosureResultResponse(res))
}

func (h *ChannelHandler) handleSync(w http.ResponseWriter, r *http.Request) {
	res, err := h.sync.SyncChannel(r.Context(), chi.URLParam(r, "channelID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, syncResponse{
		Channel:        toChannelResponse(res.Channel),
		PreviousStatus: string(res.Previous),
		Modified:       res.Modified,
	})
}

func (h *ChannelHandler) handleEvents(w http.ResponseWriter, r *http.Request) {
	channelID := model.NormalizeHash(chi.URLParam(r, "channelID"))
	if err := model.ValidateChannelID(channelID); err != nil {
		h.fail(w, r, err)
		return
	}
	limit := defaultEventLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			h.fail(w, r, fmt.Errorf("%w: limit %q", model.ErrInvalidRequest, raw))
			return
		}
		limit = min(v, maxEventLimit)
	}
	events, err := h.events.Events(r.Context(), channelID, limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponses(events))
}

func (h *ChannelHandler) handleSweep(w http.ResponseWriter, r *http.Request) {
	res, err := h.sweeper.Sweep(r.Context())
	if err != nil {
		h.logger.Warn("sweep finished with errors", zap.Error(err), zap.Int("failed", res.Failed))
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *ChannelHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		h.fail(w, r, fmt.Errorf("%w: decode body: %w", model.ErrInvalidRequest, err))
		return false
	}
	return true
}

func (h *ChannelHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.Int("status", status),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", fields...)
	} else {
		h.logger.Debug("request rejected", fields...)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// statusOf maps domain errors onto HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidChannelID),
		errors.Is(err, model.ErrInvalidTxHash),
		errors.Is(err, model.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrUnauthorizedParty):
		return http.StatusForbidden
	case errors.Is(err, model.ErrChannelNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrChannelExists),
		errors.Is(err, model.ErrGracePeriodActive),
		errors.Is(err, model.ErrChannelClosed),
		errors.Is(err, model.ErrChannelNotOpen),
		errors.Is(err, model.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, model.ErrBalanceExceedsFunding),
		errors.Is(err, model.ErrLedgerMismatch),
		errors.Is(err, model.ErrChannelNotOnLedger):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case xrpl.IsTransient(err):
		return http.StatusServiceUnavailable
	case errors.Is(err, model.ErrMissingChannelKey):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
