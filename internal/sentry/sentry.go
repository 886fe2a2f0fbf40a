package sentryutil

import (
	"time"

	"fruitstock-telegram-bot/internal/tracker"
	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
)

// Init configures error reporting. An empty dsn disables it; events are then dropped.
func Init(dsn, environment string) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
	})
	if err != nil {
		log.Errorf("Sentry init (non-blocking): %s", err)
	}
	if dsn == "" {
		log.Debug("SENTRY_DSN empty, error tracking disabled")
	} else {
		log.Info("Sentry initialized")
	}
}

func Flush() { sentry.Flush(2 * time.Second) }

func CaptureError(err error, tags map[string]string) {
	if err == nil {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		sentry.CaptureException(err)
	})
}

// TickObserver reports failed tracker ticks.
func TickObserver() tracker.Observer {
	return tracker.ObserverFunc(func(res tracker.Result) {
		if !res.Failed() {
			return
		}
		CaptureError(res.Err, map[string]string{
			"tick":    res.ID,
			"trigger": string(res.Trigger),
			"status":  string(res.Status),
		})
	})
}
