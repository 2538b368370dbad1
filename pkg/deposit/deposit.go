package deposit

import (
	"context"
	"fmt"

	"github.com/balanceu/balanceu/pkg/selection"
	"github.com/shopspring/decimal"
)

const (
	ApplePay   = "Apple Pay"
	CreditCard = "Credit Card"
)

// Payment is what the deposit flow shows once an amount is chosen. Neither
// option charges anything.
type Payment struct {
	Summary string
	Options []string
}

func PreparePayment(_ context.Context, bucket selection.Bucket, amount decimal.Decimal) Payment {
	return Payment{
		Summary: fmt.Sprintf("You're depositing $%s to %s.", amount.StringFixed(2), bucket),
		Options: []string{ApplePay, CreditCard},
	}
}
