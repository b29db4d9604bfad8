package xrpl

import "time"

// rippleEpochOffset is the Unix time of 2000-01-01T00:00:00Z, the ledger's time origin.
const rippleEpochOffset = 946684800

// FromRippleTime converts ledger seconds to UTC wall-clock time.
func FromRippleTime(seconds uint32) time.Time {
	return time.Unix(int64(seconds)+rippleEpochOffset, 0).UTC()
}

func optionalTime(seconds *uint32) *time.Time {
	if seconds == nil {
		return nil
	}
	t := FromRippleTime(*seconds)
	return &t
}
