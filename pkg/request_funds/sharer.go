package request_funds

import (
	"context"

	log "github.com/sirupsen/logrus"
)

const ShareTitle = "Request Funds"

// Sharer hands a link to whatever share target the platform offers.
type Sharer interface {
	Share(ctx context.Context, title string, link string) error
}

// LogSharer is used when the platform offers no share target.
type LogSharer struct{}

func (LogSharer) Share(_ context.Context, title string, link string) error {
	log.Infof("Sharing %q: %s", title, link)
	return nil
}
