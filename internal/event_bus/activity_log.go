package event_bus

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// RegisterActivityLog subscribes info-level log lines for user-visible activity.
func RegisterActivityLog(eb *EventBus) {
	SubscribeTyped(eb, UserLoggedInType, func(_ context.Context, e UserLoggedIn) error {
		log.WithField("user", e.Username).Info("user logged in")
		return nil
	})
	SubscribeTyped(eb, UserLoggedOutType, func(_ context.Context, e UserLoggedOut) error {
		log.WithField("user", e.Username).Info("user logged out")
		return nil
	})
	SubscribeTyped(eb, ThemeChangedType, func(_ context.Context, e ThemeChanged) error {
		log.WithFields(log.Fields{"from": e.From, "to": e.To}).Info("theme changed")
		return nil
	})
	SubscribeTyped(eb, ShareLinkGeneratedType, func(_ context.Context, e ShareLinkGenerated) error {
		log.WithFields(log.Fields{
			"shareId": e.ShareId,
			"bucket":  e.Bucket,
			"amount":  e.Amount.StringFixed(2),
		}).Info("request funds link generated")
		return nil
	})
}
