package lifecycle

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/paychan-backend/internal/paychan/model"
	"github.com/goodnatureofminers/paychan-backend/internal/paychan/xrpl"
)

const (
	testChannelID = "C1AE6DDDEEC05CF2978C0BAD6FE302948E9533691DC749DCDD3B9E5992CA6198"
	otherChannel  = "5DB01B7FFED6B67E6B0414DED11E051D2EE2B7619CE0EAA6286D67A3A4D5BDB3"
	testTxHash    = "E08D6E9754025BA2534A78707605E0601F03ACE063687A0CA1BDDACFCD1698C7"
	testFunder    = "rN7n7otQDd6FczFgLdSqtcsAUxDkw6fzRH"
	testRecipient = "rf1BiGeXwwQoi8Z2ueFYTEXSwuJYfV2Jpn"
	testPublicKey = "ED5F5AC8B98974A3CA843326D9B88CEBD0560177B973EE0B149F782CFAA06DC66A"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

func noSleep(context.Context, time.Duration) error { return nil }

func openChannel(balance uint64) model.Channel {
	return model.Channel{
		ID:                 testChannelID,
		FunderAddress:      testFunder,
		RecipientAddress:   testRecipient,
		FundedAmount:       1_000,
		AccumulatedBalance: balance,
		SettleDelaySeconds: 86400,
		Status:             model.StatusOpen,
		Version:            1,
	}
}

func closingChannel(balance uint64, expiration time.Time) model.Channel {
	ch := openChannel(balance)
	ch.Status = model.StatusClosing
	ch.ExpirationTime = &expiration
	return ch
}

func closedChannel() model.Channel {
	ch := openChannel(0)
	closedAt := testNow.Add(-time.Hour)
	ch.Status = model.StatusClosed
	ch.ClosedAt = &closedAt
	ch.ClosureTxRef = testTxHash
	return ch
}

func timePtr(t time.Time) *time.Time { return &t }

func transientErr() error {
	return &xrpl.TransportError{Method: "tx", Err: errors.New("connection reset")}
}

// applyTo emulates the locked read-verify-write of the channel repository against ch.
func applyTo(ch model.Channel) func(context.Context, string, model.Mutation) (model.Channel, bool, error) {
	return func(_ context.Context, _ string, mutate model.Mutation) (model.Channel, bool, error) {
		next, changed, err := mutate(ch)
		if err != nil {
			return model.Channel{}, false, err
		}
		if !changed {
			return ch, false, nil
		}
		if err = next.Validate(); err != nil {
			return model.Channel{}, false, err
		}
		next.Version = ch.Version + 1
		return next, true, nil
	}
}

// memRepo is an in-memory ChannelRepository that serializes updates like a row lock.
type memRepo struct {
	mu       sync.Mutex
	channels map[string]model.Channel
	updates  int
}

func newMemRepo(channels ...model.Channel) *memRepo {
	r := &memRepo{channels: make(map[string]model.Channel)}
	for _, ch := range channels {
		r.channels[ch.ID] = ch
	}
	return r
}

func (r *memRepo) Channel(_ context.Context, id string) (model.Channel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ch, ok := r.channels[id]
	if !ok {
		return model.Channel{}, model.ErrChannelNotFound
	}
	return ch, nil
}

func (r *memRepo) InsertChannel(_ context.Context, ch model.Channel) (model.Channel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.channels[ch.ID]; ok {
		return model.Channel{}, model.ErrChannelExists
	}
	ch.Version = 1
	r.channels[ch.ID] = ch
	return ch, nil
}

func (r *memRepo) UpdateChannel(ctx context.Context, id string, mutate model.Mutation) (model.Channel, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.channels[id]
	if !ok {
		return model.Channel{}, false, model.ErrChannelNotFound
	}
	next, changed, err := applyTo(cur)(ctx, id, mutate)
	if err != nil || !changed {
		return next, changed, err
	}
	r.channels[id] = next
	r.updates++
	return next, true, nil
}

func (r *memRepo) ExpiredClosingChannels(_ context.Context, now time.Time, after model.ExpiryCursor, limit int) ([]model.Channel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Channel
	for _, ch := range r.channels {
		if ch.Expired(now) && after.Before(ch) {
			out = append(out, ch)
		}
	}
	sort.Slice(out, func(i, j int) bool { return model.CursorAfter(out[i]).Before(out[j]) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memRepo) ChannelsByStatus(_ context.Context, status model.Status, afterID string, limit int) ([]model.Channel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Channel
	for _, ch := range r.channels {
		if ch.Status == status && ch.ID > afterID {
			out = append(out, ch)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memRepo) get(id string) model.Channel {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.channels[id]
}

// eventLog is an EventSink keeping everything in memory.
type eventLog struct {
	mu     sync.Mutex
	events []model.LifecycleEvent
	audits []model.BalanceAudit
}

func (l *eventLog) RecordEvent(_ context.Context, ev model.LifecycleEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, ev)
	return nil
}

func (l *eventLog) RecordBalanceAudit(_ context.Context, a model.BalanceAudit) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.audits = append(l.audits, a)
	return nil
}

func (l *eventLog) types() []model.EventType {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.EventType, 0, len(l.events))
	for _, ev := range l.events {
		out = append(out, ev.Type)
	}
	return out
}

// nopMetrics satisfies every metrics interface of the package.
type nopMetrics struct{}

func (nopMetrics) ObserveAwait(string, int, time.Time) {}
func (nopMetrics) ObserveTransition(string, string) {}
func (nopMetrics) ObserveApply(string, bool, error, time.Time) {}
func (nopMetrics) ObservePrepare(string, string, error) {}
func (nopMetrics) ObserveSweep(error, int, int, int, time.Time) {}

type eventTypeMatcher model.EventType

func (m eventTypeMatcher) Matches(x any) bool {
	ev, ok := x.(model.LifecycleEvent)
	return ok && ev.Type == model.EventType(m) && ev.ChannelID == testChannelID
}

func (m eventTypeMatcher) String() string {
	return "lifecycle event " + string(m)
}

func eventOfType(t model.EventType) gomock.Matcher {
	return eventTypeMatcher(t)
}
