package deposit

import (
	"context"

	"github.com/balanceu/balanceu/pkg/selection"
	"github.com/balanceu/balanceu/pkg/theme"
)

type BucketTileDTO struct {
	Bucket   string `json:"bucket"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

type PaymentDTO struct {
	Bucket  string   `json:"bucket"`
	Amount  string   `json:"amount"`
	Summary string   `json:"summary"`
	Options []string `json:"options"`
}

type ViewDTO struct {
	Title         string          `json:"title"`
	Logo          string          `json:"logo"`
	Step          string          `json:"step"`
	Theme         theme.ThemeDTO  `json:"theme"`
	Buckets       []BucketTileDTO `json:"buckets"`
	PresetAmounts []string        `json:"presetAmounts,omitempty"`
	Payment       *PaymentDTO     `json:"payment,omitempty"`
}

func Render(_ context.Context, step selection.Step, th theme.Theme) any {
	view := ViewDTO{
		Title:   "Deposit Funds",
		Logo:    "/balanceu-logo.png",
		Step:    step.Name(),
		Theme:   theme.ToDTO(th),
		Buckets: []BucketTileDTO{},
	}

	_, bucketChosen := step.(selection.BucketSelected)
	for _, b := range selection.VisibleBuckets(step, selection.Buckets()) {
		view.Buckets = append(view.Buckets, BucketTileDTO{
			Bucket:   string(b),
			Label:    "Deposit to " + string(b),
			Selected: bucketChosen,
		})
	}

	switch s := step.(type) {
	case selection.BucketSelected:
		for _, amount := range selection.PresetAmounts() {
			view.PresetAmounts = append(view.PresetAmounts, amount.String())
		}
	case selection.AmountSelected[Payment]:
		view.Payment = &PaymentDTO{
			Bucket:  string(s.Bucket),
			Amount:  s.Amount.StringFixed(2),
			Summary: s.Result.Summary,
			Options: s.Result.Options,
		}
	}
	return view
}
