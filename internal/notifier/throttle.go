package notifier

import (
	"golang.org/x/time/rate"

	"github.com/julianstephens/lifeboost/internal/logger"
	"github.com/julianstephens/lifeboost/internal/metrics"
	"github.com/julianstephens/lifeboost/internal/models"
)

type throttle struct {
	inner   Emitter
	limiter *rate.Limiter
	exempt  map[models.NotificationKind]bool
}

// Throttle limits inner to perMinute notifications with the given burst.
// Excess notifications are dropped and logged. Kinds listed in exempt are
// always delivered and do not consume the budget. A non-positive perMinute
// disables the limit.
func Throttle(inner Emitter, perMinute float64, burst int, exempt ...models.NotificationKind) Emitter {
	if perMinute <= 0 {
		return inner
	}
	if burst < 1 {
		burst = 1
	}
	t := &throttle{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(perMinute/60), burst),
		exempt:  make(map[models.NotificationKind]bool, len(exempt)),
	}
	for _, k := range exempt {
		t.exempt[k] = true
	}
	return t
}

func (t *throttle) Notify(kind models.NotificationKind, message string) {
	if !t.exempt[kind] && !t.limiter.Allow() {
		metrics.NotificationsDropped.Inc()
		logger.Warn("notification dropped by rate limit", "kind", kind, "message", message)
		return
	}
	t.inner.Notify(kind, message)
}
