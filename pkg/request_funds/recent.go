package request_funds

import (
	"github.com/balanceu/balanceu/pkg/selection"
	"github.com/shopspring/decimal"
)

type FulfilledRequest struct {
	From   string
	Bucket selection.Bucket
	Amount decimal.Decimal
	Date   string
}

func RecentFulfilled() []FulfilledRequest {
	return []FulfilledRequest{
		{From: "Alice", Bucket: selection.DiningDollars, Amount: decimal.NewFromInt(25), Date: "07/15/2025"},
		{From: "Bob", Bucket: selection.DebitDollars, Amount: decimal.NewFromInt(50), Date: "07/14/2025"},
		{From: "Charlie", Bucket: selection.DiningDollars, Amount: decimal.NewFromInt(10), Date: "07/13/2025"},
	}
}
