// Package housekeeping purges notification and device rows that no longer serve anyone.
package housekeeping

import (
	"context"
	"log/slog"
	"time"

	"mealmarket/config"
	"mealmarket/internal/domain/lifecycle"
	"mealmarket/internal/domain/repository"
	"mealmarket/internal/infra/metrics"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
	"go.uber.org/multierr"
)

const (
	defaultSchedule        = "@every 6h"
	defaultReadRetention   = 7 * 24 * time.Hour
	defaultDeviceRetention = 30 * 24 * time.Hour

	jobReadNotifications = "read_notifications"
	jobInactiveDevices   = "inactive_devices"
)

// Cleaner runs the purge jobs on a cron schedule.
type Cleaner struct {
	notifications   repository.NotificationRepository
	devices         repository.DeviceRepository
	cron            *cron.Cron
	now             func() time.Time
	logger          *slog.Logger
	schedule        string
	readRetention   time.Duration
	deviceRetention time.Duration
}

// Option customises the Cleaner.
type Option func(*Cleaner)

// WithCron injects a preconfigured cron instance.
func WithCron(c *cron.Cron) Option {
	return func(cleaner *Cleaner) {
		if c != nil {
			cleaner.cron = c
		}
	}
}

// WithNow overrides the clock used to compute cutoffs.
func WithNow(now func() time.Time) Option {
	return func(cleaner *Cleaner) {
		if now != nil {
			cleaner.now = now
		}
	}
}

// New builds a Cleaner from the housekeeping config section, filling defaults for unset values.
func New(
	notifications repository.NotificationRepository,
	devices repository.DeviceRepository,
	cfg *config.HousekeepingConfig,
	logger *slog.Logger,
	opts ...Option,
) *Cleaner {
	cleaner := &Cleaner{
		notifications:   notifications,
		devices:         devices,
		now:             time.Now,
		logger:          logger.With(slog.String("component", "housekeeping")),
		schedule:        defaultSchedule,
		readRetention:   defaultReadRetention,
		deviceRetention: defaultDeviceRetention,
	}
	if cfg != nil {
		if cfg.Schedule != "" {
			cleaner.schedule = cfg.Schedule
		}
		if cfg.ReadRetention > 0 {
			cleaner.readRetention = cfg.ReadRetention
		}
		if cfg.DeviceRetention > 0 {
			cleaner.deviceRetention = cfg.DeviceRetention
		}
	}

	for _, opt := range opts {
		opt(cleaner)
	}

	if cleaner.cron == nil {
		cleaner.cron = cron.New(cron.WithLogger(cron.DiscardLogger))
	}

	return cleaner
}

type CleanerParams struct {
	fx.In

	Lc               fx.Lifecycle
	Config           *config.Config
	Logger           *slog.Logger
	NotificationRepo repository.NotificationRepository
	DeviceRepo       repository.DeviceRepository
}

// NewCleaner provides the Cleaner and schedules it for the application lifetime when enabled.
func NewCleaner(params CleanerParams) *Cleaner {
	cleaner := New(params.NotificationRepo, params.DeviceRepo, params.Config.Housekeeping, params.Logger)

	if params.Config.Housekeeping == nil || !params.Config.Housekeeping.Enabled {
		return cleaner
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return cleaner.Start()
		},
		OnStop: func(ctx context.Context) error {
			return cleaner.Stop(ctx)
		},
	})

	return cleaner
}

// Start registers the purge run and launches the scheduler.
func (c *Cleaner) Start() error {
	if _, err := c.cron.AddFunc(c.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		if err := c.RunOnce(ctx); err != nil {
			c.logger.Warn("Housekeeping run failed", slog.Any("error", err))
		}
	}); err != nil {
		return errors.Wrapf(err, "invalid housekeeping schedule %q", c.schedule)
	}

	c.cron.Start()
	c.logger.Info("Housekeeping scheduled",
		slog.String("schedule", c.schedule),
		slog.Duration("read_retention", c.readRetention),
		slog.Duration("device_retention", c.deviceRetention),
	)

	return nil
}

// Stop halts the scheduler and waits for a running job, bounded by ctx.
func (c *Cleaner) Stop(ctx context.Context) error {
	stopped := c.cron.Stop()

	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-stopped.Done():
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

// RunOnce runs every job once. A failing job does not stop the others; all failures are returned together.
func (c *Cleaner) RunOnce(ctx context.Context) error {
	now := c.now()

	var errs error
	errs = multierr.Append(errs, c.run(ctx, jobReadNotifications, func(ctx context.Context) (int64, error) {
		return c.notifications.PurgeReadBefore(ctx, now.Add(-c.readRetention))
	}))
	errs = multierr.Append(errs, c.run(ctx, jobInactiveDevices, func(ctx context.Context) (int64, error) {
		return c.devices.PurgeInactiveBefore(ctx, now.Add(-c.deviceRetention))
	}))

	return errs
}

func (c *Cleaner) run(ctx context.Context, job string, purge func(context.Context) (int64, error)) error {
	removed, err := purge(ctx)
	if err != nil {
		return errors.Wrap(err, job)
	}

	metrics.HousekeepingRemoved.WithLabelValues(job).Add(float64(removed))
	if removed > 0 {
		c.logger.Info("Housekeeping removed rows", slog.String("job", job), slog.Int64("removed", removed))
	}

	return nil
}
