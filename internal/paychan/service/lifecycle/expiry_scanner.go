package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/paychan-backend/internal/clock"
	"github.com/goodnatureofminers/paychan-backend/internal/paychan/model"
	"github.com/goodnatureofminers/paychan-backend/pkg/workerpool"
	"go.uber.org/zap"
)

// ScannerConfig tunes the expiry sweep.
type ScannerConfig struct {
	Interval   time.Duration
	BatchLimit int
	Workers    int
	// Retry spaces consecutive failed sweeps; MaxAttempts is ignored since the loop never gives up.
	Retry clock.Backoff
}

// DefaultScannerConfig returns the sweep defaults.
func DefaultScannerConfig() ScannerConfig {
	return ScannerConfig{
		Interval:   defaultSweepInterval,
		BatchLimit: defaultSweepBatchLimit,
		Workers:    defaultSweepWorkers,
		Retry:      clock.DefaultBackoff(),
	}
}

// SweepResult counts what one sweep did.
type SweepResult struct {
	Checked       int `json:"checked"`
	Finalized     int `json:"finalized"`
	StillOnLedger int `json:"still_on_ledger"`
	Failed        int `json:"failed"`
}

// ExpiryScanner finalizes closing channels whose grace period elapsed and which the ledger
// no longer lists. Channels still on the ledger are left for an explicit claim.
type ExpiryScanner struct {
	repo       ChannelRepository
	ledger     Ledger
	reconciler *Reconciler
	metrics    ExpiryScannerMetrics
	cfg        ScannerConfig
	logger     *zap.Logger
	sleep      func(context.Context, time.Duration) error
	now        func() time.Time
	trigger    chan struct{}
}

// NewExpiryScanner constructs an ExpiryScanner.
func NewExpiryScanner(
	repo ChannelRepository,
	ledger Ledger,
	reconciler *Reconciler,
	metrics ExpiryScannerMetrics,
	cfg ScannerConfig,
	logger *zap.Logger,
) (*ExpiryScanner, error) {
	switch {
	case repo == nil:
		return nil, errors.New("channel repository is required")
	case ledger == nil:
		return nil, errors.New("ledger is required")
	case reconciler == nil:
		return nil, errors.New("reconciler is required")
	case metrics == nil:
		return nil, errors.New("expiry scanner metrics is required")
	}
	def := DefaultScannerConfig()
	if cfg.Interval <= 0 {
		cfg.Interval = def.Interval
	}
	if cfg.BatchLimit <= 0 {
		cfg.BatchLimit = def.BatchLimit
	}
	if cfg.Workers <= 0 {
		cfg.Workers = def.Workers
	}
	if cfg.Retry.InitialDelay <= 0 || cfg.Retry.Factor < 1 {
		cfg.Retry = def.Retry
	}
	return &ExpiryScanner{
		repo:       repo,
		ledger:     ledger,
		reconciler: reconciler,
		metrics:    metrics,
		cfg:        cfg,
		logger:     logger.Named("expiry_scanner"),
		sleep:      clock.SleepWithContext,
		now:        clock.NowUTC,
		trigger:    make(chan struct{}, 1),
	}, nil
}

// Trigger asks a running loop to sweep now instead of waiting for the interval.
func (s *ExpiryScanner) Trigger() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// Run sweeps on every interval until the context is canceled.
func (s *ExpiryScanner) Run(ctx context.Context) error {
	failures := 0
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if _, err := s.Sweep(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			failures++
			delay := s.cfg.Retry.Delay(failures)
			s.logger.Warn("sweep failed, backing off",
				zap.Error(err),
				zap.Int("failures", failures),
				zap.Duration("sleep", delay))
			if sleepErr := s.sleep(ctx, delay); sleepErr != nil {
				return sleepErr
			}
			continue
		}
		failures = 0
		if err := s.wait(ctx); err != nil {
			return err
		}
	}
}

// Sweep checks every expired closing channel against its funder's channel listing, walking
// the expired set one BatchLimit page at a time. Running it again without a ledger change has
// no further effect.
func (s *ExpiryScanner) Sweep(ctx context.Context) (res SweepResult, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveSweep(err, res.Finalized, res.StillOnLedger, res.Failed, started)
	}()

	now := s.now()
	listings := make(map[string]map[string]struct{})
	var (
		errs   []error
		cursor model.ExpiryCursor
	)
	for {
		page, selectErr := s.repo.ExpiredClosingChannels(ctx, now, cursor, s.cfg.BatchLimit)
		if selectErr != nil {
			errs = append(errs, fmt.Errorf("select expired channels: %w", selectErr))
			break
		}
		res.Checked += len(page)
		if len(page) == 0 {
			break
		}
		part, pageErr := s.sweepPage(ctx, page, listings)
		res.Finalized += part.Finalized
		res.StillOnLedger += part.StillOnLedger
		res.Failed += part.Failed
		if pageErr != nil {
			errs = append(errs, pageErr)
		}
		if len(page) < s.cfg.BatchLimit || ctx.Err() != nil {
			break
		}
		cursor = model.CursorAfter(page[len(page)-1])
	}
	err = errors.Join(errs...)

	if res.Checked == 0 && err == nil {
		s.logger.Debug("no expired closing channels")
		return res, nil
	}
	s.logger.Info("expiry sweep finished",
		zap.Int("checked", res.Checked),
		zap.Int("finalized", res.Finalized),
		zap.Int("still_on_ledger", res.StillOnLedger),
		zap.Int("failed", res.Failed),
		zap.Error(err))
	return res, err
}

// sweepPage fans one page out per funder. listings caches each funder's ledger channels for the
// rest of the sweep; a page only touches funders from different goroutines.
func (s *ExpiryScanner) sweepPage(ctx context.Context, page []model.Channel, listings map[string]map[string]struct{}) (SweepResult, error) {
	byFunder := make(map[string][]model.Channel)
	funders := make([]string, 0)
	for _, ch := range page {
		if _, ok := byFunder[ch.FunderAddress]; !ok {
			funders = append(funders, ch.FunderAddress)
		}
		byFunder[ch.FunderAddress] = append(byFunder[ch.FunderAddress], ch)
	}

	var (
		mu  sync.Mutex
		res SweepResult
	)
	err := workerpool.ProcessAll(ctx, s.cfg.Workers, funders, func(ctx context.Context, funder string) error {
		mu.Lock()
		onLedger, cached := listings[funder]
		mu.Unlock()
		if !cached {
			listed, listErr := s.listFunder(ctx, funder)
			if listErr != nil {
				mu.Lock()
				res.Failed += len(byFunder[funder])
				mu.Unlock()
				return listErr
			}
			onLedger = listed
			mu.Lock()
			listings[funder] = onLedger
			mu.Unlock()
		}

		part, sweepErr := s.sweepFunder(ctx, onLedger, byFunder[funder])
		mu.Lock()
		res.Finalized += part.Finalized
		res.StillOnLedger += part.StillOnLedger
		res.Failed += part.Failed
		mu.Unlock()
		return sweepErr
	})
	return res, err
}

func (s *ExpiryScanner) listFunder(ctx context.Context, funder string) (map[string]struct{}, error) {
	listed, err := s.ledger.AccountChannels(ctx, funder)
	if err != nil {
		return nil, fmt.Errorf("list channels of %s: %w", funder, err)
	}
	onLedger := make(map[string]struct{}, len(listed))
	for _, c := range listed {
		onLedger[model.NormalizeHash(c.ChannelID)] = struct{}{}
	}
	return onLedger, nil
}

func (s *ExpiryScanner) sweepFunder(ctx context.Context, onLedger map[string]struct{}, channels []model.Channel) (SweepResult, error) {
	var (
		res  SweepResult
		errs []error
	)
	for _, ch := range channels {
		if _, ok := onLedger[ch.ID]; ok {
			res.StillOnLedger++
			s.logger.Debug("expired channel still on ledger, awaiting claim",
				zap.String("channel_id", ch.ID),
				zap.Timep("expiration", ch.ExpirationTime))
			continue
		}
		applied, err := s.reconciler.FinalizeExpired(ctx, ch.ID)
		if err != nil {
			res.Failed++
			errs = append(errs, err)
			continue
		}
		if applied.Modified {
			res.Finalized++
		}
	}
	return res, errors.Join(errs...)
}

func (s *ExpiryScanner) wait(ctx context.Context) error {
	timer := time.NewTimer(s.cfg.Interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.trigger:
		return nil
	case <-timer.C:
		return nil
	}
}
