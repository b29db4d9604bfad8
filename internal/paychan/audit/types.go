package audit

import (
	"context"

	"github.com/goodnatureofminers/paychan-backend/internal/paychan/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Store persists lifecycle history.
	Store interface {
		InsertLifecycleEvents(ctx context.Context, events []model.LifecycleEvent) error
		InsertBalanceAudits(ctx context.Context, audits []model.BalanceAudit) error
		LifecycleEvents(ctx context.Context, channelID string, limit int) ([]model.LifecycleEvent, error)
	}
)
