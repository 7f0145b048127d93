package automation

import (
	"context"
	"time"
)

// RetryPolicy bounds the campaign fetch retry loop. The store is eventually
// consistent: creator association rows can lag campaign creation, so the
// first fetches after a campaign is created may come back incomplete.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
}

// DefaultRetryPolicy matches the propagation window observed in production:
// five attempts, two seconds apart.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 5, Delay: 2 * time.Second}
}

func defaultSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
