package selection

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

type receipt struct {
	Summary string
	Calls   int
}

func newTestMachine() (*Machine[receipt], *int) {
	calls := 0
	m := NewMachine(Buckets(), func(_ context.Context, bucket Bucket, amount decimal.Decimal) receipt {
		calls++
		return receipt{Summary: fmt.Sprintf("%s to %s", amount.StringFixed(2), bucket), Calls: calls}
	})
	return m, &calls
}

func TestMachine_SelectBucket(t *testing.T) {
	t.Run("should move from idle to bucket selected", func(t *testing.T) {
		m, _ := newTestMachine()

		require.NoError(t, m.SelectBucket(DiningDollars))

		assert.Equal(t, BucketSelected{Bucket: DiningDollars}, m.Step())
	})

	t.Run("should toggle back to idle when the same bucket is selected twice", func(t *testing.T) {
		m, _ := newTestMachine()

		require.NoError(t, m.SelectBucket(DebitDollars))
		require.NoError(t, m.SelectBucket(DebitDollars))

		assert.Equal(t, Idle{}, m.Step())
	})

	t.Run("should switch to another bucket", func(t *testing.T) {
		m, _ := newTestMachine()

		require.NoError(t, m.SelectBucket(DebitDollars))
		require.NoError(t, m.SelectBucket(DiningDollars))

		assert.Equal(t, BucketSelected{Bucket: DiningDollars}, m.Step())
	})

	t.Run("should reject unknown buckets", func(t *testing.T) {
		m, _ := newTestMachine()

		err := m.SelectBucket("Meal Taps")

		assert.ErrorIs(t, err, ErrUnknownBucket)
		assert.Equal(t, Idle{}, m.Step())
	})

	t.Run("should ignore bucket selection once an amount is chosen", func(t *testing.T) {
		m, _ := newTestMachine()
		require.NoError(t, m.SelectBucket(DiningDollars))
		require.NoError(t, m.SelectAmount(ctx, decimal.NewFromInt(10)))

		require.NoError(t, m.SelectBucket(DiningDollars))

		assert.Equal(t, "amountSelected", m.Step().Name())
	})
}

func TestMachine_SelectAmount(t *testing.T) {
	t.Run("should be a no-op without a bucket", func(t *testing.T) {
		m, calls := newTestMachine()

		err := m.SelectAmount(ctx, decimal.NewFromInt(25))

		assert.ErrorIs(t, err, ErrNoBucket)
		assert.Equal(t, Idle{}, m.Step())
		assert.Equal(t, 0, *calls)
	})

	t.Run("should run the action and keep its result", func(t *testing.T) {
		m, calls := newTestMachine()
		require.NoError(t, m.SelectBucket(DebitDollars))

		require.NoError(t, m.SelectAmount(ctx, decimal.NewFromInt(50)))

		step, ok := m.Step().(AmountSelected[receipt])
		require.True(t, ok)
		assert.Equal(t, DebitDollars, step.Bucket)
		assert.True(t, decimal.NewFromInt(50).Equal(step.Amount))
		assert.Equal(t, "50.00 to Debit Dollars", step.Result.Summary)
		assert.Equal(t, 1, *calls)
	})

	t.Run("should run the action again on every entry", func(t *testing.T) {
		m, calls := newTestMachine()
		require.NoError(t, m.SelectBucket(DebitDollars))
		require.NoError(t, m.SelectAmount(ctx, decimal.NewFromInt(50)))
		m.ChangeAmount()

		require.NoError(t, m.SelectAmount(ctx, decimal.NewFromInt(10)))

		assert.Equal(t, 2, *calls)
		assert.Equal(t, 2, m.Step().(AmountSelected[receipt]).Result.Calls)
	})
}

func TestMachine_SelectCustomAmount(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		wantErr bool
	}{
		{name: "whole number", text: "42", want: "42"},
		{name: "decimal", text: "12.345", want: "12.345"},
		{name: "negative amounts are accepted", text: "-5", want: "-5"},
		{name: "surrounding whitespace", text: " 7.5 ", want: "7.5"},
		{name: "empty", text: "", wantErr: true},
		{name: "not a number", text: "ten", wantErr: true},
		{name: "huge exponent", text: "1e50000000", wantErr: true},
		{name: "tiny exponent", text: "1e-50000000", wantErr: true},
		{name: "too many characters", text: strings.Repeat("9", 65), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestMachine()
			require.NoError(t, m.SelectBucket(DiningDollars))

			err := m.SelectCustomAmount(ctx, tt.text)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				assert.Equal(t, BucketSelected{Bucket: DiningDollars}, m.Step())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Step().(AmountSelected[receipt]).Amount.String())
		})
	}
}

func TestMachine_SelectAmount_OutOfRange(t *testing.T) {
	m, calls := newTestMachine()
	require.NoError(t, m.SelectBucket(DiningDollars))

	err := m.SelectAmount(ctx, decimal.New(1, 50000000))

	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Equal(t, BucketSelected{Bucket: DiningDollars}, m.Step())
	assert.Zero(t, *calls)
}

func TestCheckAmount(t *testing.T) {
	assert.NoError(t, CheckAmount(decimal.RequireFromString("123456.78")))
	assert.NoError(t, CheckAmount(decimal.New(1, 32)))
	assert.ErrorIs(t, CheckAmount(decimal.New(1, 33)), ErrInvalidAmount)
	assert.ErrorIs(t, CheckAmount(decimal.New(1, -33)), ErrInvalidAmount)
}

func TestMachine_CommitAmount(t *testing.T) {
	t.Run("should drop a result computed for another bucket", func(t *testing.T) {
		m, _ := newTestMachine()
		require.NoError(t, m.SelectBucket(DiningDollars))
		bucket, pending, err := m.pendingAmount(decimal.NewFromInt(5))
		require.NoError(t, err)
		require.True(t, pending)

		require.NoError(t, m.SelectBucket(DebitDollars))
		m.commitAmount(bucket, decimal.NewFromInt(5), receipt{Summary: "stale"})

		assert.Equal(t, BucketSelected{Bucket: DebitDollars}, m.Step())
	})
}

func TestMachine_Back(t *testing.T) {
	t.Run("should unwind one step at a time", func(t *testing.T) {
		m, _ := newTestMachine()
		require.NoError(t, m.SelectBucket(DiningDollars))
		require.NoError(t, m.SelectAmount(ctx, decimal.NewFromInt(100)))

		assert.False(t, m.Back())
		assert.Equal(t, BucketSelected{Bucket: DiningDollars}, m.Step())

		assert.False(t, m.Back())
		assert.Equal(t, Idle{}, m.Step())

		assert.True(t, m.Back())
		assert.Equal(t, Idle{}, m.Step())
	})
}

func TestMachine_ChangeBucketAndReset(t *testing.T) {
	m, _ := newTestMachine()
	require.NoError(t, m.SelectBucket(DiningDollars))
	require.NoError(t, m.SelectAmount(ctx, decimal.NewFromInt(10)))

	m.ChangeBucket()
	assert.Equal(t, Idle{}, m.Step())

	require.NoError(t, m.SelectBucket(DebitDollars))
	m.ChangeAmount()
	assert.Equal(t, BucketSelected{Bucket: DebitDollars}, m.Step())

	m.Reset()
	assert.Equal(t, Idle{}, m.Step())
}
