package deposit

import (
	"github.com/balanceu/balanceu/internal/utils"
	"github.com/balanceu/balanceu/pkg/selection"
)

func NewFlow(clock utils.Clock) *selection.Flow[Payment] {
	return selection.NewFlow("deposit", selection.Buckets(), PreparePayment, clock)
}
