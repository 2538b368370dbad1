package request_funds

import (
	"context"
	"fmt"

	"github.com/balanceu/balanceu/pkg/selection"
	"github.com/balanceu/balanceu/pkg/theme"
)

const Description = "Generate a unique link to allow friends or family to securely deposit funds directly into your account. Select your bucket and amount below to get started."

type BucketTileDTO struct {
	Bucket   string `json:"bucket"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

type FulfilledRequestDTO struct {
	From   string `json:"from"`
	Bucket string `json:"bucket"`
	Amount string `json:"amount"`
	Date   string `json:"date"`
}

type ShareDTO struct {
	Id      string `json:"id"`
	Link    string `json:"link"`
	Message string `json:"message"`
	Title   string `json:"title"`
}

type ViewDTO struct {
	Title         string                `json:"title"`
	Description   string                `json:"description"`
	Logo          string                `json:"logo"`
	Step          string                `json:"step"`
	Theme         theme.ThemeDTO        `json:"theme"`
	Buckets       []BucketTileDTO       `json:"buckets"`
	PresetAmounts []string              `json:"presetAmounts,omitempty"`
	Share         *ShareDTO             `json:"share,omitempty"`
	Recent        []FulfilledRequestDTO `json:"recent,omitempty"`
}

func Render(_ context.Context, step selection.Step, th theme.Theme) any {
	view := ViewDTO{
		Title:       "Request Funds",
		Description: Description,
		Logo:        "/balanceu-logo.png",
		Step:        step.Name(),
		Theme:       theme.ToDTO(th),
		Buckets:     []BucketTileDTO{},
	}

	_, bucketChosen := step.(selection.BucketSelected)
	for _, b := range selection.VisibleBuckets(step, selection.Buckets()) {
		view.Buckets = append(view.Buckets, BucketTileDTO{
			Bucket:   string(b),
			Label:    "To " + string(b),
			Selected: bucketChosen,
		})
	}

	switch s := step.(type) {
	case selection.Idle:
		for _, r := range RecentFulfilled() {
			view.Recent = append(view.Recent, FulfilledRequestDTO{
				From:   r.From,
				Bucket: string(r.Bucket),
				Amount: "$" + r.Amount.String(),
				Date:   r.Date,
			})
		}
	case selection.BucketSelected:
		for _, amount := range selection.PresetAmounts() {
			view.PresetAmounts = append(view.PresetAmounts, amount.String())
		}
	case selection.AmountSelected[ShareLink]:
		view.Share = &ShareDTO{
			Id:      s.Result.Id,
			Link:    s.Result.Link,
			Title:   ShareTitle,
			Message: fmt.Sprintf("This unique link allows someone to deposit $%s to your %s account.", s.Amount.String(), s.Bucket),
		}
	}
	return view
}
