package deposit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/balanceu/balanceu/internal/event_bus"
	"github.com/balanceu/balanceu/internal/test_utils"
	"github.com/balanceu/balanceu/internal/utils"
	"github.com/balanceu/balanceu/pkg/client_state"
	"github.com/balanceu/balanceu/pkg/navigation"
	"github.com/balanceu/balanceu/pkg/selection"
	"github.com/balanceu/balanceu/pkg/theme"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreparePayment(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{amount: "10", want: "You're depositing $10.00 to Dining Dollars."},
		{amount: "12.5", want: "You're depositing $12.50 to Dining Dollars."},
		{amount: "-3", want: "You're depositing $-3.00 to Dining Dollars."},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			payment := PreparePayment(context.Background(), selection.DiningDollars, decimal.RequireFromString(tt.amount))

			assert.Equal(t, tt.want, payment.Summary)
			assert.Equal(t, []string{"Apple Pay", "Credit Card"}, payment.Options)
		})
	}
}

func TestRender(t *testing.T) {
	sky := theme.Resolve("sky")

	t.Run("idle shows both buckets and no amounts", func(t *testing.T) {
		view := Render(context.Background(), selection.Idle{}, sky).(ViewDTO)

		assert.Equal(t, "idle", view.Step)
		assert.Len(t, view.Buckets, 2)
		assert.Equal(t, "Deposit to Dining Dollars", view.Buckets[0].Label)
		assert.Empty(t, view.PresetAmounts)
		assert.Nil(t, view.Payment)
	})

	t.Run("bucket selected shows only that bucket and the presets", func(t *testing.T) {
		view := Render(context.Background(), selection.BucketSelected{Bucket: selection.DebitDollars}, sky).(ViewDTO)

		require.Len(t, view.Buckets, 1)
		assert.Equal(t, "Debit Dollars", view.Buckets[0].Bucket)
		assert.True(t, view.Buckets[0].Selected)
		assert.Equal(t, []string{"10", "25", "50", "100"}, view.PresetAmounts)
	})

	t.Run("amount selected shows the payment options", func(t *testing.T) {
		amount := decimal.NewFromInt(25)
		step := selection.AmountSelected[Payment]{
			Bucket: selection.DebitDollars,
			Amount: amount,
			Result: PreparePayment(context.Background(), selection.DebitDollars, amount),
		}

		view := Render(context.Background(), step, sky).(ViewDTO)

		assert.Empty(t, view.Buckets)
		require.NotNil(t, view.Payment)
		assert.Equal(t, "25.00", view.Payment.Amount)
		assert.Equal(t, "You're depositing $25.00 to Debit Dollars.", view.Payment.Summary)
	})
}

func TestDepositScreen(t *testing.T) {
	flow := NewFlow(&utils.MockClock{})
	handler := selection.NewHandler(flow, theme.NewService(event_bus.NewRecordingPublisher()),
		navigation.NewNavigator(&utils.MockClock{}), Render)
	ctx, _ := test_utils.StateContext(client_state.State{VisitorId: "v", Theme: "emerald"})

	post := func(fn http.HandlerFunc, target, body string) ViewDTO {
		w := httptest.NewRecorder()
		fn(w, httptest.NewRequest(http.MethodPost, target, strings.NewReader(body)).WithContext(ctx))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var view ViewDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
		return view
	}

	view := post(handler.Screen, "/deposit", "")
	assert.Equal(t, "emerald", view.Theme.Key)

	post(handler.SelectBucket, "/deposit/bucket", `{"bucket":"Dining Dollars"}`)
	view = post(handler.SelectBucket, "/deposit/bucket", `{"bucket":"Dining Dollars"}`)
	assert.Equal(t, "idle", view.Step)

	post(handler.SelectBucket, "/deposit/bucket", `{"bucket":"Dining Dollars"}`)
	view = post(handler.SelectAmount, "/deposit/amount", `{"custom":"7.5"}`)
	require.NotNil(t, view.Payment)
	assert.Equal(t, "You're depositing $7.50 to Dining Dollars.", view.Payment.Summary)
}
