// Package runner drives a Planner at a fixed tick rate. It is the
// periodic bus loop the planner core is deliberately external to: the
// planner itself starts no goroutines and owns no timer.
package runner

import (
	"context"
	"time"

	"github.com/openadas/latplanner/internal/message"
	"github.com/openadas/latplanner/internal/planner"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("module", "runner")

// Source supplies one tick's worth of bus messages. A real
// implementation bridges this to whatever transport the surrounding
// stack uses; this module only depends on the interface.
type Source interface {
	Next(ctx context.Context) (message.CarState, message.ControlsState, message.LiveParameters, message.Model, message.Alive, error)
}

// Sink receives the planner's per-tick publication.
type Sink interface {
	Publish(plan message.PathPlan, live *message.LiveMpc)
}

// Clock tracks the step count of a running Runner: a fixed dt plus a
// monotonic step counter, with no sub-loop or RPC machinery.
type Clock struct {
	DT   float64
	Step int64
}

func (c *Clock) tick() { c.Step++ }

// Runner owns the tick loop and wires a Source -> Planner -> Sink on
// every step.
type Runner struct {
	planner  *planner.Planner
	source   Source
	sink     Sink
	interval time.Duration
	clock    Clock
}

// New constructs a Runner. interval is the wall-clock period between
// ticks.
func New(p *planner.Planner, source Source, sink Sink, interval time.Duration) *Runner {
	return &Runner{
		planner:  p,
		source:   source,
		sink:     sink,
		interval: interval,
		clock:    Clock{DT: interval.Seconds()},
	}
}

// Run blocks, calling Update once per tick, until ctx is cancelled or
// the Source reports an error.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			if err := r.step(ctx, now); err != nil {
				return err
			}
		}
	}
}

func (r *Runner) step(ctx context.Context, now time.Time) error {
	car, controls, params, model, alive, err := r.source.Next(ctx)
	if err != nil {
		return err
	}

	plan, live := r.planner.Update(now, car, controls, params, model, alive)
	if !plan.MpcSolutionValid {
		log.Warnf("mpc solution invalid at step %d", r.clock.Step)
	}
	r.sink.Publish(plan, live)

	r.clock.tick()
	return nil
}
