package navigation

import (
	"context"

	"github.com/balanceu/balanceu/internal/utils"
	"github.com/balanceu/balanceu/internal/visitor"
	"github.com/balanceu/balanceu/pkg/client_state"
	"github.com/balanceu/balanceu/pkg/theme"
	log "github.com/sirupsen/logrus"
)

// maxHistory bounds each visitor's back stack.
const maxHistory = 50

type Navigator interface {
	// GoTo records from in the visitor's history and returns the themed link to "to".
	GoTo(ctx context.Context, from string, to string, key theme.Key) string
	// GoBack pops one history entry. With no history the dashboard is returned.
	GoBack(ctx context.Context) string
}

type NavigatorImpl struct {
	history *visitor.Registry[History]
}

func NewNavigator(clock utils.Clock) *NavigatorImpl {
	return &NavigatorImpl{
		history: visitor.NewRegistry("navigation", func() *History { return &History{} }, clock),
	}
}

func (n *NavigatorImpl) GoTo(ctx context.Context, from string, to string, key theme.Key) string {
	link := Link(to, key)
	session, err := client_state.FromContext(ctx)
	if err != nil {
		log.Trace("no client session, navigation not recorded")
		return link
	}
	n.history.Update(session.VisitorId(), func(h *History) {
		h.push(from)
		if len(h.entries) > maxHistory {
			h.entries = h.entries[len(h.entries)-maxHistory:]
		}
	})
	log.Debugf("navigating %s -> %s", from, link)
	return link
}

func (n *NavigatorImpl) GoBack(ctx context.Context) string {
	target := DashboardPath
	session, err := client_state.FromContext(ctx)
	if err != nil {
		return target
	}
	n.history.Update(session.VisitorId(), func(h *History) {
		if previous, ok := h.pop(); ok {
			target = previous
		}
	})
	log.Debugf("navigating back to %s", target)
	return target
}

// Registry exposes the history store so idle visitors can be swept.
func (n *NavigatorImpl) Registry() visitor.Sweeper {
	return n.history
}
