package worker

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultPollInterval is used when the reminder config leaves it unset.
const defaultPollInterval = time.Minute

// reminderPoller periodically drains due payment reminders. Reminders are
// rows, not in-process timers, so polling survives restarts and multiple
// instances only race on the row-level status guard.
type reminderPoller struct {
	notificationUc usecase.NotificationUsecase
	interval       time.Duration
	logger         *slog.Logger
	cancel         context.CancelFunc
	done           chan struct{}
}

// PollerParams holds dependencies for the reminder poller
type PollerParams struct {
	fx.In

	Lc             fx.Lifecycle
	Cfg            *config.Config
	Logger         *slog.Logger
	NotificationUc usecase.NotificationUsecase
}

// NewReminderPoller creates the polling loop for due payment reminders.
func NewReminderPoller(params PollerParams) (delivery.Delivery, error) {
	interval := defaultPollInterval
	if params.Cfg.Reminder != nil && params.Cfg.Reminder.PollInterval > 0 {
		interval = params.Cfg.Reminder.PollInterval
	}

	poller := &reminderPoller{
		notificationUc: params.NotificationUc,
		interval:       interval,
		logger:         params.Logger,
		done:           make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: poller.stop,
	})

	return poller, nil
}

// Serve runs the polling loop until the context is canceled or the poller is stopped.
func (p *reminderPoller) Serve(ctx context.Context) error {
	ctx, p.cancel = context.WithCancel(ctx)
	defer close(p.done)

	p.logger.Info("Starting reminder poller", slog.Duration("interval", p.interval))

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("Reminder poller stopped")

			return errors.WithStack(ctx.Err())
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *reminderPoller) poll(ctx context.Context) {
	processed, err := p.notificationUc.ProcessDueReminders(ctx)
	if err != nil {
		p.logger.Error("Reminder poll failed", slog.Any("error", err))

		return
	}

	if processed > 0 {
		p.logger.Info("Reminder poll completed", slog.Int("processed", processed))
	}
}

func (p *reminderPoller) stop(ctx context.Context) error {
	if p.cancel == nil {
		return nil
	}
	p.cancel()

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}
