package transport

import (
	"context"

	"github.com/goodnatureofminers/paychan-backend/internal/paychan/model"
	"github.com/goodnatureofminers/paychan-backend/internal/paychan/service/lifecycle"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Registry interface {
		Register(ctx context.Context, req lifecycle.RegisterRequest) (model.Channel, error)
		Accrue(ctx context.Context, channelID string, amount uint64) (model.Channel, error)
		Channel(ctx context.Context, channelID string) (model.Channel, error)
	}
	Closures interface {
		PrepareClosure(ctx context.Context, channelID, initiator string) (model.ClosureAttempt, error)
		ConfirmClosure(ctx context.Context, req lifecycle.ConfirmRequest) (lifecycle.ClosureResult, error)
	}
	LedgerSync interface {
		SyncChannel(ctx context.Context, channelID string) (lifecycle.ReconcileResult, error)
	}
	Sweeper interface {
		Sweep(ctx context.Context) (lifecycle.SweepResult, error)
	}
	EventReader interface {
		Events(ctx context.Context, channelID string, limit int) ([]model.LifecycleEvent, error)
	}
	HealthChecker interface {
		Ping(ctx context.Context) error
	}
)
