package selection

import (
	"context"
	"fmt"

	"github.com/balanceu/balanceu/internal/utils"
	"github.com/balanceu/balanceu/internal/visitor"
	"github.com/balanceu/balanceu/pkg/client_state"
	"github.com/balanceu/balanceu/pkg/theme"
	"github.com/shopspring/decimal"
)

// screen is one visitor's open flow: its machine and the theme it was opened with.
type screen[R any] struct {
	machine *Machine[R]
	theme   theme.Key
}

// Flow keeps one Machine per visitor. Every method returns the step reached
// after the operation.
type Flow[R any] struct {
	screens *visitor.Registry[screen[R]]
	action  Action[R]
}

func NewFlow[R any](name string, buckets []Bucket, action Action[R], clock utils.Clock) *Flow[R] {
	return &Flow[R]{
		screens: visitor.NewRegistry(name, func() *screen[R] {
			return &screen[R]{machine: NewMachine(buckets, action)}
		}, clock),
		action: action,
	}
}

// Enter starts the flow over, as when the screen is opened, and remembers the
// theme the screen was opened with.
func (f *Flow[R]) Enter(ctx context.Context, key theme.Key) (Step, error) {
	id, err := visitorId(ctx)
	if err != nil {
		return nil, err
	}
	var step Step
	err = f.screens.Reset(id, func(s *screen[R]) error {
		s.theme = key
		step = s.machine.Step()
		return nil
	})
	return step, err
}

// Theme returns the key recorded by Enter. ok is false before the first entry.
func (f *Flow[R]) Theme(ctx context.Context) (key theme.Key, ok bool) {
	id, err := visitorId(ctx)
	if err != nil {
		return "", false
	}
	f.screens.Update(id, func(s *screen[R]) {
		key = s.theme
	})
	return key, key != ""
}

func (f *Flow[R]) Current(ctx context.Context) (Step, error) {
	return f.apply(ctx, func(m *Machine[R]) error { return nil })
}

func (f *Flow[R]) SelectBucket(ctx context.Context, bucket Bucket) (Step, error) {
	return f.apply(ctx, func(m *Machine[R]) error { return m.SelectBucket(bucket) })
}

// SelectAmount runs the action without holding the visitor lock, then
// commits the result.
func (f *Flow[R]) SelectAmount(ctx context.Context, amount decimal.Decimal) (Step, error) {
	var bucket Bucket
	var pending bool
	step, err := f.apply(ctx, func(m *Machine[R]) error {
		var err error
		bucket, pending, err = m.pendingAmount(amount)
		return err
	})
	if err != nil || !pending {
		return step, err
	}

	result := f.action(ctx, bucket, amount)
	return f.apply(ctx, func(m *Machine[R]) error {
		m.commitAmount(bucket, amount, result)
		return nil
	})
}

func (f *Flow[R]) SelectCustomAmount(ctx context.Context, text string) (Step, error) {
	amount, err := ParseAmount(text)
	if err != nil {
		step, currentErr := f.Current(ctx)
		if currentErr != nil {
			return nil, currentErr
		}
		return step, err
	}
	return f.SelectAmount(ctx, amount)
}

// Back returns delegate=true when the flow was already idle.
func (f *Flow[R]) Back(ctx context.Context) (step Step, delegate bool, err error) {
	step, err = f.apply(ctx, func(m *Machine[R]) error {
		delegate = m.Back()
		return nil
	})
	return step, delegate, err
}

func (f *Flow[R]) ChangeAmount(ctx context.Context) (Step, error) {
	return f.apply(ctx, func(m *Machine[R]) error {
		m.ChangeAmount()
		return nil
	})
}

func (f *Flow[R]) ChangeBucket(ctx context.Context) (Step, error) {
	return f.apply(ctx, func(m *Machine[R]) error {
		m.ChangeBucket()
		return nil
	})
}

func (f *Flow[R]) Registry() visitor.Sweeper {
	return f.screens
}

// apply always reports the resulting step, also when fn fails, so handlers
// can render the unchanged screen next to the error.
func (f *Flow[R]) apply(ctx context.Context, fn func(m *Machine[R]) error) (Step, error) {
	id, err := visitorId(ctx)
	if err != nil {
		return nil, err
	}
	var step Step
	err = f.screens.Do(id, func(s *screen[R]) error {
		opErr := fn(s.machine)
		step = s.machine.Step()
		return opErr
	})
	return step, err
}

func visitorId(ctx context.Context) (string, error) {
	session, err := client_state.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to resolve visitor: %w", err)
	}
	return session.VisitorId(), nil
}

// VisibleBuckets lists the bucket tiles shown for step: all of them while
// idle, only the chosen one after, none once an amount is chosen.
func VisibleBuckets(step Step, all []Bucket) []Bucket {
	switch s := step.(type) {
	case Idle:
		return all
	case BucketSelected:
		return []Bucket{s.Bucket}
	default:
		return nil
	}
}
