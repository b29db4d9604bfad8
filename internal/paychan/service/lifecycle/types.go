package lifecycle

import (
	"context"
	"time"

	"github.com/goodnatureofminers/paychan-backend/internal/paychan/model"
	"github.com/goodnatureofminers/paychan-backend/internal/paychan/xrpl"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Ledger interface {
		LedgerEntry(ctx context.Context, channelID string) (xrpl.PayChannelEntry, error)
		Transaction(ctx context.Context, hash string) (xrpl.TxStatus, error)
		AccountChannels(ctx context.Context, account string) ([]xrpl.AccountChannel, error)
	}
	ChannelRepository interface {
		Channel(ctx context.Context, id string) (model.Channel, error)
		InsertChannel(ctx context.Context, ch model.Channel) (model.Channel, error)
		UpdateChannel(ctx context.Context, id string, mutate model.Mutation) (model.Channel, bool, error)
		ExpiredClosingChannels(ctx context.Context, now time.Time, after model.ExpiryCursor, limit int) ([]model.Channel, error)
		ChannelsByStatus(ctx context.Context, status model.Status, afterID string, limit int) ([]model.Channel, error)
	}
	EventSink interface {
		RecordEvent(ctx context.Context, ev model.LifecycleEvent) error
		RecordBalanceAudit(ctx context.Context, a model.BalanceAudit) error
	}
	ValidatorMetrics interface {
		ObserveAwait(outcome string, attempts int, started time.Time)
	}
	ReconcilerMetrics interface {
		ObserveTransition(from, to string)
		ObserveApply(operation string, modified bool, err error, started time.Time)
		ObservePrepare(role, source string, err error)
	}
	ExpiryScannerMetrics interface {
		ObserveSweep(err error, finalized, stillOnLedger, failed int, started time.Time)
	}
)
