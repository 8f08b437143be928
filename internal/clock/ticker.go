package clock

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// Granularity selects how often the ticker fires.
type Granularity int

const (
	// Minute fires at the top of every minute.
	Minute Granularity = iota
	// Second fires every second. Used by debug mode.
	Second
)

func (g Granularity) String() string {
	if g == Second {
		return "second"
	}
	return "minute"
}

// Ticker publishes the time of day on a schedule. Only the latest reading
// is kept when the consumer falls behind.
type Ticker struct {
	scheduler   gocron.Scheduler
	clock       Clock
	granularity Granularity
	ticks       chan TimeOfDay
}

// NewTicker creates a ticker. It does nothing until Start is called.
func NewTicker(g Granularity, c Clock) (*Ticker, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}
	if c == nil {
		c = System{}
	}
	return &Ticker{
		scheduler:   s,
		clock:       c,
		granularity: g,
		ticks:       make(chan TimeOfDay, 1),
	}, nil
}

// Ticks returns the channel readings are delivered on.
func (t *Ticker) Ticks() <-chan TimeOfDay {
	return t.ticks
}

// Start schedules the job and begins ticking.
func (t *Ticker) Start() error {
	def := gocron.CronJob("* * * * *", false)
	if t.granularity == Second {
		def = gocron.DurationJob(time.Second)
	}

	_, err := t.scheduler.NewJob(
		def,
		gocron.NewTask(t.fire),
		gocron.WithName(t.granularity.String()+"-tick"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to create tick job: %w", err)
	}

	slog.Info("Starting ticker", "granularity", t.granularity.String())
	t.scheduler.Start()
	return nil
}

// Stop shuts the scheduler down.
func (t *Ticker) Stop() error {
	slog.Info("Stopping ticker")
	return t.scheduler.Shutdown()
}

func (t *Ticker) fire() {
	tod := FromTime(t.clock.Now())
	for {
		select {
		case t.ticks <- tod:
			return
		default:
		}
		// Drop the stale reading.
		select {
		case <-t.ticks:
		default:
		}
	}
}
