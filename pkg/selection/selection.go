// Package selection models the bucket → amount → action flow shared by the
// deposit and request-funds screens.
package selection

import (
	"errors"

	"github.com/shopspring/decimal"
)

type Bucket string

const (
	DiningDollars Bucket = "Dining Dollars"
	DebitDollars  Bucket = "Debit Dollars"
)

var (
	ErrUnknownBucket = errors.New("unknown bucket")
	ErrNoBucket      = errors.New("no bucket selected")
	ErrInvalidAmount = errors.New("amount is not a number")
)

// Buckets lists the buckets a flow offers, in display order.
func Buckets() []Bucket {
	return []Bucket{DiningDollars, DebitDollars}
}

func PresetAmounts() []decimal.Decimal {
	return []decimal.Decimal{
		decimal.NewFromInt(10),
		decimal.NewFromInt(25),
		decimal.NewFromInt(50),
		decimal.NewFromInt(100),
	}
}

// Step is one of Idle, BucketSelected or AmountSelected[R].
type Step interface {
	Name() string
	step()
}

type Idle struct{}

type BucketSelected struct {
	Bucket Bucket
}

// AmountSelected is terminal: Result holds what the flow's action produced.
type AmountSelected[R any] struct {
	Bucket Bucket
	Amount decimal.Decimal
	Result R
}

func (Idle) Name() string              { return "idle" }
func (BucketSelected) Name() string    { return "bucketSelected" }
func (AmountSelected[R]) Name() string { return "amountSelected" }

func (Idle) step()              {}
func (BucketSelected) step()    {}
func (AmountSelected[R]) step() {}
