package request_funds

import (
	"context"
	"strings"

	"github.com/balanceu/balanceu/internal/event_bus"
	"github.com/balanceu/balanceu/pkg/navigation"
	"github.com/balanceu/balanceu/pkg/selection"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// ShareLink is a display-only request link. Its id is never redeemed.
type ShareLink struct {
	Id   string
	Link string
}

type ShareLinks struct {
	host   string
	newId  func() string
	events event_bus.Publisher
}

func NewShareLinks(host string, events event_bus.Publisher) *ShareLinks {
	return &ShareLinks{
		host:   strings.TrimSuffix(host, "/"),
		newId:  uuid.NewString,
		events: events,
	}
}

// Generate composes a fresh link every time an amount is chosen.
func (s *ShareLinks) Generate(ctx context.Context, bucket selection.Bucket, amount decimal.Decimal) ShareLink {
	id := s.newId()
	link := ShareLink{
		Id:   id,
		Link: s.host + navigation.RequestFundsPath + "?id=" + id,
	}

	err := s.events.Publish(event_bus.NewEvent(ctx, event_bus.ShareLinkGeneratedType, event_bus.ShareLinkGenerated{
		ShareId: id,
		Bucket:  string(bucket),
		Amount:  amount,
		Link:    link.Link,
	}))
	if err != nil {
		log.Errorf("failed to publish share link: %v", err)
	}
	return link
}
