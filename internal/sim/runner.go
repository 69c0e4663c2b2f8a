package sim

import (
	"context"

	"github.com/san-kum/world2/internal/world"
)

// Observer is notified after every successful tick.
type Observer interface {
	OnTick(v world.Vars)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(v world.Vars)

func (f ObserverFunc) OnTick(v world.Vars) { f(v) }

// Runner drives a model from its initial tick to completion, collecting
// the full history.
type Runner struct {
	model     *world.Model
	observers []Observer
}

func New(m *world.Model) *Runner {
	return &Runner{model: m}
}

func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run advances the model until it reports done, returning every
// snapshot in order. The context is checked once per tick; on
// cancellation or a model error the history collected so far is
// returned alongside the error.
func (r *Runner) Run(ctx context.Context) ([]world.Vars, error) {
	c := r.model.Constants()
	steps := int((c.EndTime-c.Time)/c.DT) + 2
	history := make([]world.Vars, 0, steps)

	for !r.model.Done() {
		select {
		case <-ctx.Done():
			return history, ctx.Err()
		default:
		}

		v, err := r.model.Advance()
		if err != nil {
			return history, err
		}
		history = append(history, v)

		for _, obs := range r.observers {
			obs.OnTick(v)
		}
	}

	return history, nil
}
