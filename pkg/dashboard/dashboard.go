package dashboard

import (
	"github.com/balanceu/balanceu/pkg/selection"
	"github.com/shopspring/decimal"
)

const dateLayout = "Monday, January 2, 2006"

type Brand struct {
	Name string
	// Logo is empty for the text brand.
	Logo string
}

var brands = []Brand{
	{Name: "BalanceU"},
	{Name: "ASU", Logo: "/ASU-logo.png"},
	{Name: "NAU", Logo: "/NAU_Logo.png"},
}

type Balance struct {
	Bucket      selection.Bucket
	Amount      decimal.Decimal
	Depositable bool
}

type MealTaps struct {
	Remaining     int
	AvailableWeek int
}

type Transaction struct {
	Name     string
	DateTime string
	Amount   string
}

type LineItem struct {
	Description string
	Amount      decimal.Decimal
}

type HistoryEntry struct {
	Date   string
	Amount decimal.Decimal
}

type Receipt struct {
	Merchant string
	Image    string
	Age      string
	Items    []LineItem
	Bucket   selection.Bucket
	History  []HistoryEntry
}

func (r Receipt) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range r.Items {
		total = total.Add(item.Amount)
	}
	return total
}

func Balances() []Balance {
	return []Balance{
		{Bucket: selection.DiningDollars, Amount: decimal.RequireFromString("1.12"), Depositable: true},
		{Bucket: selection.DebitDollars, Amount: decimal.RequireFromString("177.73"), Depositable: true},
	}
}

func Taps() MealTaps {
	return MealTaps{Remaining: 121, AvailableWeek: 4}
}

func Transactions() []Transaction {
	return []Transaction{
		{Name: "The Pizza Spot", DateTime: "10/13/2025 @ 6:42pm", Amount: "-$15.94"},
		{Name: "The Buffet", DateTime: "10/10/2025 @ 12:31pm", Amount: "-1 Meal"},
		{Name: "Coffee Place", DateTime: "10/10/2025 @ 7:04am", Amount: "-$1.27"},
	}
}

var receipts = map[string]Receipt{
	"The Pizza Spot": {
		Merchant: "The Pizza Spot",
		Image:    "/pizza-header.png",
		Age:      "4 hours ago",
		Items: []LineItem{
			{Description: "2 Slice Combo + Drink", Amount: decimal.RequireFromString("7.34")},
			{Description: "6 Wings", Amount: decimal.RequireFromString("5.34")},
		},
		Bucket: selection.DiningDollars,
		History: []HistoryEntry{
			{Date: "5/13/2025", Amount: decimal.RequireFromString("15.94")},
			{Date: "4/10/2025", Amount: decimal.RequireFromString("9.27")},
			{Date: "4/10/2025", Amount: decimal.RequireFromString("1.27")},
		},
	},
}

// ReceiptFor reports false for transactions that have no itemized receipt.
func ReceiptFor(name string) (Receipt, bool) {
	r, ok := receipts[name]
	return r, ok
}
