package selection

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

const (
	maxAmountText     = 64
	maxAmountExponent = 32
	maxAmountDigits   = 64
)

// Action runs when an amount is chosen and produces the flow's terminal view.
type Action[R any] func(ctx context.Context, bucket Bucket, amount decimal.Decimal) R

type Machine[R any] struct {
	buckets []Bucket
	action  Action[R]
	step    Step
}

func NewMachine[R any](buckets []Bucket, action Action[R]) *Machine[R] {
	return &Machine[R]{buckets: buckets, action: action, step: Idle{}}
}

func (m *Machine[R]) Step() Step {
	return m.step
}

// SelectBucket toggles: choosing the selected bucket again returns to Idle.
// Bucket tiles are hidden once an amount is chosen, so it is a no-op there.
func (m *Machine[R]) SelectBucket(bucket Bucket) error {
	if !slices.Contains(m.buckets, bucket) {
		return fmt.Errorf("%w: %q", ErrUnknownBucket, bucket)
	}
	switch s := m.step.(type) {
	case Idle:
		m.step = BucketSelected{Bucket: bucket}
	case BucketSelected:
		if s.Bucket == bucket {
			m.step = Idle{}
		} else {
			m.step = BucketSelected{Bucket: bucket}
		}
	default:
		log.Tracef("ignoring bucket selection in step %s", m.step.Name())
	}
	return nil
}

// SelectAmount moves BucketSelected to AmountSelected and runs the action.
// Without a bucket it leaves the state untouched and returns ErrNoBucket.
func (m *Machine[R]) SelectAmount(ctx context.Context, amount decimal.Decimal) error {
	bucket, pending, err := m.pendingAmount(amount)
	if err != nil || !pending {
		return err
	}
	m.commitAmount(bucket, amount, m.action(ctx, bucket, amount))
	return nil
}

// pendingAmount checks whether amount can be chosen now and reports the bucket
// it goes to. pending is false when an amount is already chosen.
func (m *Machine[R]) pendingAmount(amount decimal.Decimal) (bucket Bucket, pending bool, err error) {
	if err := CheckAmount(amount); err != nil {
		return "", false, err
	}
	s, ok := m.step.(BucketSelected)
	if !ok {
		if _, done := m.step.(AmountSelected[R]); done {
			log.Trace("ignoring amount selection, amount already chosen")
			return "", false, nil
		}
		return "", false, ErrNoBucket
	}
	return s.Bucket, true, nil
}

// commitAmount stores the action's result unless the bucket changed while it ran.
func (m *Machine[R]) commitAmount(bucket Bucket, amount decimal.Decimal, result R) {
	if s, ok := m.step.(BucketSelected); !ok || s.Bucket != bucket {
		log.Tracef("dropping amount selection, step moved to %s", m.step.Name())
		return
	}
	m.step = AmountSelected[R]{Bucket: bucket, Amount: amount, Result: result}
}

// SelectCustomAmount accepts any numeric text, including negative values and
// arbitrary precision.
func (m *Machine[R]) SelectCustomAmount(ctx context.Context, text string) error {
	amount, err := ParseAmount(text)
	if err != nil {
		return err
	}
	return m.SelectAmount(ctx, amount)
}

// Back unwinds one step. It returns true when already Idle, meaning the
// caller should navigate back instead.
func (m *Machine[R]) Back() bool {
	switch s := m.step.(type) {
	case AmountSelected[R]:
		m.step = BucketSelected{Bucket: s.Bucket}
	case BucketSelected:
		m.step = Idle{}
	default:
		return true
	}
	return false
}

func (m *Machine[R]) ChangeAmount() {
	if s, ok := m.step.(AmountSelected[R]); ok {
		m.step = BucketSelected{Bucket: s.Bucket}
	}
}

func (m *Machine[R]) ChangeBucket() {
	m.step = Idle{}
}

func (m *Machine[R]) Reset() {
	m.step = Idle{}
}

// ParseAmount reads free-form amount text. Any sign and precision is fine as
// long as the value stays within CheckAmount's limits.
func ParseAmount(text string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	if len(trimmed) > maxAmountText {
		return decimal.Decimal{}, fmt.Errorf("%w: longer than %d characters", ErrInvalidAmount, maxAmountText)
	}
	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}
	if err := CheckAmount(amount); err != nil {
		return decimal.Decimal{}, err
	}
	return amount, nil
}

// CheckAmount rejects values whose written form would be unreasonably long,
// such as 1e50000000.
func CheckAmount(amount decimal.Decimal) error {
	exp := amount.Exponent()
	if exp > maxAmountExponent || exp < -maxAmountExponent || amount.NumDigits() > maxAmountDigits {
		return fmt.Errorf("%w: out of range", ErrInvalidAmount)
	}
	return nil
}
